// internal/domain/models/category.go
package models

// CategoryAll is the "all categories" sentinel used by listing filters.
// It is not a real category identifier and must never collide with one.
const CategoryAll = "all"

// Convenio category identifiers. The identifier is the only load-bearing
// part for filtering; labels, icons and colors belong to the templates.
const (
	CategorySalud           = "SALUD"
	CategoryComida          = "COMIDA"
	CategoryTecnologia      = "TECNOLOGIA"
	CategoryEducacion       = "EDUCACION"
	CategoryEntretenimiento = "ENTRETENIMIENTO"
	CategoryDeporte         = "DEPORTE"
	CategoryVarios          = "VARIOS"
)

// ConvenioCategories lists the closed set of convenio categories in display
// order, paired with their human labels.
var ConvenioCategories = []CategoryInfo{
	{ID: CategorySalud, Label: "Salud y Bienestar"},
	{ID: CategoryComida, Label: "Alimentos y Bebidas"},
	{ID: CategoryTecnologia, Label: "Tecnología y Accesorios"},
	{ID: CategoryEducacion, Label: "Educación y Cursos"},
	{ID: CategoryEntretenimiento, Label: "Ocio y Diversión"},
	{ID: CategoryDeporte, Label: "Deporte y Fitness"},
	{ID: CategoryVarios, Label: "Productos Varios"},
}

// CategoryInfo pairs a category identifier with its display label.
type CategoryInfo struct {
	ID    string
	Label string
}

// IsConvenioCategory reports whether id is one of the known convenio
// category identifiers. Unknown values are tolerated everywhere in the
// listing path; they simply never match a specific-category filter.
func IsConvenioCategory(id string) bool {
	for _, c := range ConvenioCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ConvenioCategoryLabel returns the human label for a category identifier,
// or the identifier itself when it is not part of the known set.
func ConvenioCategoryLabel(id string) string {
	for _, c := range ConvenioCategories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

// News category identifiers. News listings are fetched server-side by
// category, unlike convenios which are filtered in the listing controller.
const (
	NewsGeneral       = "GENERAL"
	NewsEventos       = "EVENTOS"
	NewsBecas         = "BECAS"
	NewsConvocatorias = "CONVOCATORIAS"
	NewsComunicados   = "COMUNICADOS"
)

// NewsCategories lists the closed set of news categories in display order.
var NewsCategories = []CategoryInfo{
	{ID: NewsGeneral, Label: "General"},
	{ID: NewsEventos, Label: "Eventos"},
	{ID: NewsBecas, Label: "Becas y Apoyos"},
	{ID: NewsConvocatorias, Label: "Convocatorias"},
	{ID: NewsComunicados, Label: "Comunicados"},
}

// IsNewsCategory reports whether id is a known news category identifier.
func IsNewsCategory(id string) bool {
	for _, c := range NewsCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

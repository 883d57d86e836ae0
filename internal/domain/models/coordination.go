// internal/domain/models/coordination.go
package models

// CoordinationType classifies an organizational unit of the council.
type CoordinationType string

const (
	CoordDirectiva      CoordinationType = "directiva"
	CoordOperativa      CoordinationType = "operativa"
	CoordAdministrativa CoordinationType = "administrativa"
	CoordOtro           CoordinationType = "otro"
)

// Coordination is a fixed organizational unit (mesa directiva seat or
// operative coordination). The table is closed; records are keyed by ID and
// the label is only used for display and for the legacy label-based roster
// join. Icon and color metadata live in the templates.
type Coordination struct {
	ID    string
	Label string
	Type  CoordinationType

	// AllowedRoles is the set of role identifiers that may be assigned to
	// this unit. Never empty for directiva/operativa entries.
	AllowedRoles []string

	// Route is the site path the unit's "more info" action navigates to.
	Route string

	Description string
}

// Coordinations is the closed organizational table, in display order:
// mesa directiva first, then the operative coordinations, then the
// administrative catch-alls.
var Coordinations = []Coordination{
	{
		ID:           "PRESIDENCIA",
		Label:        "Presidencia",
		Type:         CoordDirectiva,
		AllowedRoles: []string{RoleEstructura},
		Route:        "/concejales",
		Description:  "Representación oficial del alumnado, liderazgo estratégico y coordinación general del Consejo.",
	},
	{
		ID:           "SECRETARIA",
		Label:        "Secretaría General",
		Type:         CoordDirectiva,
		AllowedRoles: []string{RoleEstructura},
		Route:        "/concejales",
		Description:  "Organización interna, gestión de documentación oficial, minutas y agenda del Consejo.",
	},
	{
		ID:           "TESORERIA",
		Label:        "Tesorería",
		Type:         CoordDirectiva,
		AllowedRoles: []string{RoleEstructura},
		Route:        "/concejales",
		Description:  "Administración transparente de recursos, finanzas y gestión de presupuestos para actividades.",
	},
	{
		ID:           "CONTRALORIA",
		Label:        "Contraloría",
		Type:         CoordDirectiva,
		AllowedRoles: []string{RoleEstructura},
		Route:        "/concejales",
		Description:  "Vigilancia del cumplimiento de estatutos, auditoría interna y transparencia en procesos.",
	},
	{
		ID:           "ACADEMICO",
		Label:        "Académico",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/noticias",
		Description:  "Atención a problemáticas escolares, asesorías y gestión de trámites educativos.",
	},
	{
		ID:           "BECAS",
		Label:        "Becas y Apoyos",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/noticias",
		Description:  "Gestión integral de apoyos alimenticios, becas de reinscripción y becas para cursos del CLE.",
	},
	{
		ID:           "PREVENCION",
		Label:        "Prevención y Logística",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/noticias",
		Description:  "Campañas de impacto social para la comunidad y programas para liberación de servicio becario.",
	},
	{
		ID:           "COMUNICACION",
		Label:        "Comunicación y Difusión",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/noticias",
		Description:  "Manejo de redes oficiales, diseño de estrategias informativas y difusión de avisos.",
	},
	{
		ID:           "VINCULACION",
		Label:        "Vinculación",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/convenios",
		Description:  "Alianzas estratégicas con empresas y sector externo para proyectos de valor curricular.",
	},
	{
		ID:           "EVENTOS",
		Label:        "Eventos (SODECU)",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/noticias",
		Description:  "Creación de experiencias culturales, deportivas y recreativas para la integración estudiantil.",
	},
	{
		ID:           "MARKETING",
		Label:        "Marketing y Diseño",
		Type:         CoordOperativa,
		AllowedRoles: []string{RoleCoordinador, RoleVocal},
		Route:        "/noticias",
		Description:  "Identidad visual institucional, creación de contenido gráfico y branding del Consejo.",
	},
	{
		ID:           "CONSEJO_GENERAL",
		Label:        "Consejo General",
		Type:         CoordOtro,
		AllowedRoles: []string{RoleConcejal},
		Route:        "/concejales",
		Description:  "Concejales representantes de carrera que no pertenecen a una coordinación específica.",
	},
	{
		ID:           "SISTEMAS",
		Label:        "Sistemas",
		Type:         CoordAdministrativa,
		AllowedRoles: []string{RoleAdminSys},
		Route:        "/",
		Description:  "Desarrollo y mantenimiento de la plataforma del Consejo.",
	},
	{
		ID:           "NINGUNA",
		Label:        "Ninguna",
		Type:         CoordOtro,
		AllowedRoles: []string{RoleVocal, RoleConcejal},
		Route:        "/",
		Description:  "Sin área asignada.",
	},
}

// CoordinationByID looks a unit up by identifier.
func CoordinationByID(id string) (Coordination, bool) {
	for _, c := range Coordinations {
		if c.ID == id {
			return c, true
		}
	}
	return Coordination{}, false
}

// CoordinationsOfType returns the units of the given type, in table order.
func CoordinationsOfType(t CoordinationType) []Coordination {
	var out []Coordination
	for _, c := range Coordinations {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

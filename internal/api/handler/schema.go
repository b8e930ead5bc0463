package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type listPostsQuery struct {
	Page  int `query:"page"  validate:"omitempty,min=1,max=10000"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=50"`
}

type listArchivosQuery struct {
	Categoria string `query:"categoria" validate:"omitempty,max=100"`
}

type siteModeRequest struct {
	UnderConstruction *bool `json:"underConstruction" validate:"required"`
}

// --- Response types ---

type roleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type eventResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Location          string     `json:"location"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	ImageURL          string     `json:"image_url"`
	IsPublic          bool       `json:"is_public"`
	VisibleToAllRoles bool       `json:"visible_to_all_roles"`
	RoleIDs           []string   `json:"role_ids"`
	CreatedAt         time.Time  `json:"created_at"`
}

type archivoResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	FileURL           string    `json:"file_url"`
	MimeType          string    `json:"mime_type"`
	SizeBytes         int64     `json:"size_bytes"`
	IsPublic          bool      `json:"is_public"`
	VisibleToAllRoles bool      `json:"visible_to_all_roles"`
	RoleIDs           []string  `json:"role_ids"`
	CreatedAt         time.Time `json:"created_at"`
}

type postResponse struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url"`
	Author        string     `json:"author"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

type delegacionResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	FullName     string         `json:"full_name"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at"`
	Roles        []roleResponse `json:"roles"`
}

// --- Envelopes ---

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

type eventEnvelope struct {
	Event eventResponse `json:"event"`
}

type archivosResponse struct {
	Archivos []archivoResponse `json:"archivos"`
}

type postsResponse struct {
	Posts []postResponse `json:"posts"`
}

type postEnvelope struct {
	Post postResponse `json:"post"`
}

type delegacionesResponse struct {
	Delegaciones []delegacionResponse `json:"delegaciones"`
}

type delegacionEnvelope struct {
	Delegacion delegacionResponse `json:"delegacion"`
}

type accessResponse struct {
	HasAccess bool           `json:"hasAccess"`
	Roles     []roleResponse `json:"roles"`
}

type usersResponse struct {
	Users []userResponse `json:"users"`
}

type rolesResponse struct {
	Roles []roleResponse `json:"roles"`
}

type siteModeResponse struct {
	UnderConstruction bool `json:"underConstruction"`
}

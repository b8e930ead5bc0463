package handler

import (
	"github.com/google/uuid"

	"github.com/portal-comunidad/portal-api/internal/core/domain"
)

// Lists are always rendered as JSON arrays, never null.

func toRoleResponses(roles []domain.Role) []roleResponse {
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleResponse{ID: r.ID.String(), Name: r.Name})
	}
	return out
}

func toIDStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:                e.ID.String(),
		Title:             e.Title,
		Description:       e.Description,
		Location:          e.Location,
		StartDate:         e.StartDate,
		EndDate:           e.EndDate,
		ImageURL:          e.ImageURL,
		IsPublic:          e.Access.IsPublic,
		VisibleToAllRoles: e.Access.VisibleToAllRoles,
		RoleIDs:           toIDStrings(e.Access.PermittedRoleIDs),
		CreatedAt:         e.CreatedAt,
	}
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toArchivoResponses(archivos []domain.Archivo) []archivoResponse {
	out := make([]archivoResponse, 0, len(archivos))
	for _, a := range archivos {
		out = append(out, archivoResponse{
			ID:                a.ID.String(),
			Name:              a.Name,
			Description:       a.Description,
			Category:          a.Category,
			FileURL:           a.FileURL,
			MimeType:          a.MimeType,
			SizeBytes:         a.SizeBytes,
			IsPublic:          a.Access.IsPublic,
			VisibleToAllRoles: a.Access.VisibleToAllRoles,
			RoleIDs:           toIDStrings(a.Access.PermittedRoleIDs),
			CreatedAt:         a.CreatedAt,
		})
	}
	return out
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:            p.ID.String(),
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		Author:        p.Author,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
	}
}

func toPostResponses(posts []domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}

func toDelegacionResponse(d domain.Delegacion) delegacionResponse {
	return delegacionResponse{
		ID:          d.ID.String(),
		Slug:        d.Slug,
		Name:        d.Name,
		Description: d.Description,
		City:        d.City,
		Address:     d.Address,
		Email:       d.Email,
		Phone:       d.Phone,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
	}
}

func toDelegacionResponses(ds []domain.Delegacion) []delegacionResponse {
	out := make([]delegacionResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDelegacionResponse(d))
	}
	return out
}

func toUserResponses(users []domain.UserWithRoles) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:           u.ID.String(),
			Email:        u.Email,
			FullName:     u.FullName,
			CreatedAt:    u.CreatedAt,
			LastSignInAt: u.LastSignInAt,
			Roles:        toRoleResponses(u.Roles),
		})
	}
	return out
}

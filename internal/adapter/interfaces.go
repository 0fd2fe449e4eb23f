// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote audit API.
//
// The primary abstraction is [RemoteGateway], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNetwork] for anything that
// means the server could not be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/nutri-audit-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_gateway_mock.go -package=mock

// RemoteGateway is the remote system of record.
//
// Push methods send one bulk request per call and return one result per
// submitted row, in request order. List methods return the complete
// collection, following page links. Every method except Ping requires a
// bearer credential.
type RemoteGateway interface {
	// Ping probes the health endpoint. A nil error means the server answered.
	Ping(ctx context.Context) error

	PushInstitutions(ctx context.Context, items []models.InstitutionDTO) ([]models.PushResult, error)
	PushVisits(ctx context.Context, items []models.VisitDTO) ([]models.PushResult, error)
	PushDishes(ctx context.Context, items []models.DishDTO) ([]models.PushResult, error)
	PushIngredients(ctx context.Context, items []models.IngredientDTO) ([]models.PushResult, error)

	ListInstitutions(ctx context.Context) ([]models.InstitutionDTO, error)
	ListVisits(ctx context.Context) ([]models.VisitDTO, error)
	ListDishes(ctx context.Context) ([]models.DishDTO, error)
	ListIngredients(ctx context.Context) ([]models.IngredientDTO, error)

	GetInstitution(ctx context.Context, id int64) (models.InstitutionDTO, error)
	GetVisit(ctx context.Context, id int64) (models.VisitDTO, error)

	// ListFoods returns the nutrition catalog.
	ListFoods(ctx context.Context) ([]models.Food, error)
}

// CredentialStore supplies the bearer token attached to every authenticated
// request. The gateway calls Invalidate when the server rejects the token.
type CredentialStore interface {
	// Token returns the current token, or [ErrNoCredentials] when none is
	// available.
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

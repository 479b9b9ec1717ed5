// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Add validation tags for request binding
//   - Version the API without changing domain models
//
// Binding tags only shape the payload; the real validation happens in the
// domain value-object factories, so a request that passes binding can still
// fail with a validation error.
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateJokeRequest)
//   - Response types: <Resource>Response (e.g., JokeResponse)
package dto

package jwt

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontohr/ponto-backend-go/internal/domain/user"
)

// Actor is the authenticated caller extracted from the access token claims.
type Actor struct {
	UserID       string
	Username     string
	Role         user.Role
	DepartmentID *string
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

func (a Actor) IsManager() bool {
	return a.Role == user.RoleManager || a.Role == user.RoleAdmin
}

// Scope returns the department restriction for listing operations: nil for
// admins, the actor's department for managers.
func (a Actor) Scope() *string {
	if a.IsAdmin() {
		return nil
	}
	return a.DepartmentID
}

// ActorFromContext extracts the authenticated actor from the JWT claims set
// by the verifier middleware.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Actor{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Actor{}, fmt.Errorf("role claim is missing or invalid")
	}

	actor := Actor{
		UserID: userID,
		Role:   user.Role(role),
	}
	if username, ok := claims["username"].(string); ok {
		actor.Username = username
	}
	if departmentID, ok := claims["department_id"].(string); ok && departmentID != "" {
		actor.DepartmentID = &departmentID
	}

	return actor, nil
}

// Package nav resolves which routed surface a user may reach from the role
// carried in the session. It has no side effects and never talks to the
// server; authorization proper is enforced server-side.
package nav

import "github.com/printdvor/storefront-cli/internal/client/models"

// Surface is a routed area of the client.
type Surface string

const (
	SurfaceAdmin   Surface = "/admin"
	SurfaceManager Surface = "/manager"
	SurfaceProfile Surface = "/auth/profile"

	SurfaceHome      Surface = "/"
	SurfaceCatalog   Surface = "/catalog"
	SurfaceFavorites Surface = "/favorites"
	SurfaceCheckout  Surface = "/checkout"
	SurfaceContacts  Surface = "/contacts"
	SurfaceServices  Surface = "/services"
)

// TargetSurfaceFor returns the surface a signed-in user lands on from the
// profile entry point: admins go to the admin dashboard, managers to the
// manager dashboard, everyone else to their profile. For an absent user it
// returns ok=false and the caller shows a login prompt instead of navigating.
// Total over its input domain: three roles plus nil.
func TargetSurfaceFor(user *models.User) (Surface, bool) {
	if user == nil {
		return "", false
	}
	switch user.Role {
	case models.RoleAdmin:
		return SurfaceAdmin, true
	case models.RoleManager:
		return SurfaceManager, true
	default:
		return SurfaceProfile, true
	}
}

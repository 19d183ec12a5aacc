package auth

import (
	"sort"
	"strings"

	"github.com/stocklane/stocklane-backend/internal/modules/user"
)

// Policy is the single source of truth for role-based route access. The
// middleware guard and the permissions endpoint both consult the same table.
type Policy struct {
	routes map[string][]user.Role
}

// DefaultPolicy returns the application's route-permission table. Keys are
// path prefixes under /api/v1.
func DefaultPolicy() *Policy {
	all := []user.Role{user.RoleAdmin, user.RoleSales, user.RoleInventory}
	stock := []user.Role{user.RoleAdmin, user.RoleInventory}
	return &Policy{routes: map[string][]user.Role{
		"/api/v1/dashboard": all,
		"/api/v1/products":  stock,
		"/api/v1/suppliers": stock,
		"/api/v1/purchases": stock,
		"/api/v1/sales":     {user.RoleAdmin, user.RoleSales},
		"/api/v1/reports":   all,
	}}
}

// Allows reports whether role may access the given request path. Paths that
// do not match any guarded prefix are allowed for any authenticated user.
func (p *Policy) Allows(role user.Role, path string) bool {
	for prefix, roles := range p.routes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			for _, r := range roles {
				if r == role {
					return true
				}
			}
			return false
		}
	}
	return true
}

// MenuFor lists the guarded route prefixes the role may access, sorted.
func (p *Policy) MenuFor(role user.Role) []string {
	var menu []string
	for prefix, roles := range p.routes {
		for _, r := range roles {
			if r == role {
				menu = append(menu, prefix)
				break
			}
		}
	}
	sort.Strings(menu)
	return menu
}

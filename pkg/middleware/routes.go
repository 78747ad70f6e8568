package middleware

import "strings"

type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteProtected
	RouteAdmin
)

func (c RouteClass) String() string {
	switch c {
	case RoutePublic:
		return "public"
	case RouteAdmin:
		return "admin"
	default:
		return "protected"
	}
}

// RouteTable is the deployment-time route protection table.
type RouteTable struct {
	PublicExact    []string
	PublicPrefixes []string
	AdminPrefixes  []string
}

// DefaultRoutes lists the public pages and APIs; everything else needs a session.
var DefaultRoutes = RouteTable{
	PublicExact: []string{"/"},
	PublicPrefixes: []string{
		"/sign-in",
		"/sign-up",
		"/flights",
		"/search",
		"/api/health",
		"/api/verteil",
		"/api/webhooks",
		"/metrics",
	},
	AdminPrefixes: []string{"/admin", "/api/admin"},
}

// WithPublic returns a copy of the table with extra public prefixes
func (t RouteTable) WithPublic(prefixes ...string) RouteTable {
	out := RouteTable{
		PublicExact:    append([]string(nil), t.PublicExact...),
		PublicPrefixes: append([]string(nil), t.PublicPrefixes...),
		AdminPrefixes:  append([]string(nil), t.AdminPrefixes...),
	}
	for _, p := range prefixes {
		if p != "" && p != "/" {
			out.PublicPrefixes = append(out.PublicPrefixes, p)
		}
	}
	return out
}

// Classify checks admin prefixes first so an admin path can never be made public.
func (t RouteTable) Classify(path string) RouteClass {
	if path == "" {
		path = "/"
	}

	for _, p := range t.AdminPrefixes {
		if hasPathPrefix(path, p) {
			return RouteAdmin
		}
	}

	for _, p := range t.PublicExact {
		if path == p {
			return RoutePublic
		}
	}

	for _, p := range t.PublicPrefixes {
		if hasPathPrefix(path, p) {
			return RoutePublic
		}
	}

	return RouteProtected
}

// hasPathPrefix matches whole path segments: /admin matches /admin/x but not /administrator
func hasPathPrefix(path, prefix string) bool {
	prefix = strings.TrimRight(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isAPIPath(path string) bool {
	return hasPathPrefix(path, "/api")
}

package services

import (
	"context"
	"path"
	"strconv"
	"strings"

	"github.com/clynicx/portal-service/internal/core/domain"
	"github.com/clynicx/portal-service/internal/core/ports"
)

const (
	RootPath   = "/"
	LoginPath  = "/login"
	SignupPath = "/signup"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

// GateState is the auth gate's view of one origin. User is set only in
// PhaseAuthenticated.
type GateState struct {
	Phase Phase
	User  *domain.User
}

func (s GateState) Role() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// ResolveState performs the one read that moves the gate out of loading.
// On a backend error the state stays loading and the error is returned.
func ResolveState(ctx context.Context, store ports.SessionStore) (GateState, error) {
	user, err := store.Load(ctx)
	if err != nil {
		return GateState{Phase: PhaseLoading}, err
	}
	if user == nil {
		return GateState{Phase: PhaseAnonymous}, nil
	}
	return GateState{Phase: PhaseAuthenticated, User: user}, nil
}

type Outcome int

const (
	// OutcomePass means the path is not a portal page; the gate has no say.
	OutcomePass Outcome = iota
	OutcomeLoading
	OutcomeRender
	OutcomeRedirect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeRender:
		return "render"
	case OutcomeRedirect:
		return "redirect"
	default:
		return "pass"
	}
}

// Redirect reasons. Clients only ever see the Location; the reason feeds
// logs and metrics.
const (
	ReasonAnonymous     = "anonymous"
	ReasonWrongRole     = "wrong_role"
	ReasonAuthenticated = "authenticated"
	ReasonRoot          = "root"
	ReasonUnknownPath   = "unknown_path"
	ReasonNonCanonical  = "non_canonical"
)

type Decision struct {
	Outcome  Outcome
	Location string
	Reason   string
}

func render() Decision { return Decision{Outcome: OutcomeRender} }

func redirect(location, reason string) Decision {
	return Decision{Outcome: OutcomeRedirect, Location: location, Reason: reason}
}

// Decide applies the routing policy to a requested path. A page that
// would render under a non-canonical spelling (trailing slash, dot
// segments) redirects to its clean path instead.
func Decide(state GateState, requested string) Decision {
	d := decide(state, normalizePath(requested))
	if d.Outcome == OutcomeRender && requested != normalizePath(requested) {
		return redirect(normalizePath(requested), ReasonNonCanonical)
	}
	return d
}

func decide(state GateState, p string) Decision {
	switch p {
	case LoginPath, SignupPath:
		switch state.Phase {
		case PhaseLoading:
			return Decision{Outcome: OutcomeLoading}
		case PhaseAuthenticated:
			return redirect(state.Role().Home(), ReasonAuthenticated)
		}
		return render()
	case RootPath:
		switch state.Phase {
		case PhaseLoading:
			return Decision{Outcome: OutcomeLoading}
		case PhaseAuthenticated:
			return redirect(state.Role().Home(), ReasonRoot)
		}
		return redirect(LoginPath, ReasonRoot)
	}

	section, rest, ok := sectionOf(p)
	if !ok {
		return Decision{Outcome: OutcomePass}
	}

	switch state.Phase {
	case PhaseLoading:
		return Decision{Outcome: OutcomeLoading}
	case PhaseAnonymous:
		return redirect(LoginPath, ReasonAnonymous)
	}

	// A mismatched role fails closed to the login page, not to its own home.
	if state.Role() != section {
		return redirect(LoginPath, ReasonWrongRole)
	}
	if !knownSectionPath(section, rest) {
		return redirect(section.Home(), ReasonUnknownPath)
	}
	return render()
}

// IsManaged reports whether the gate has a say over the path at all.
func IsManaged(requested string) bool {
	switch p := normalizePath(requested); p {
	case RootPath, LoginPath, SignupPath:
		return true
	default:
		_, _, ok := sectionOf(p)
		return ok
	}
}

// IsProtected reports whether the path belongs to a role's section.
func IsProtected(requested string) bool {
	_, _, ok := sectionOf(normalizePath(requested))
	return ok
}

func normalizePath(p string) string {
	if p == "" {
		return RootPath
	}
	return path.Clean("/" + p)
}

func sectionOf(p string) (domain.Role, []string, bool) {
	for _, role := range []domain.Role{domain.RolePatient, domain.RoleDoctor} {
		home := role.Home()
		if p == home {
			return role, nil, true
		}
		if rest, ok := strings.CutPrefix(p, home+"/"); ok {
			return role, strings.Split(rest, "/"), true
		}
	}
	return "", nil, false
}

func knownSectionPath(role domain.Role, segs []string) bool {
	switch len(segs) {
	case 0:
		return true
	case 1:
		switch role {
		case domain.RolePatient:
			switch segs[0] {
			case "appointments", "reports", "prescriptions", "timeline":
				return true
			}
		case domain.RoleDoctor:
			switch segs[0] {
			case "patients", "appointments":
				return true
			}
		}
	case 2:
		return role == domain.RoleDoctor && segs[0] == "patients" && isID(segs[1])
	case 3:
		return role == domain.RolePatient && segs[0] == "reports" && isID(segs[1]) && segs[2] == "file"
	}
	return false
}

func isID(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

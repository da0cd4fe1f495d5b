package domain

import "strings"

// NavItem is a sidebar entry. Items are static per role.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// NavEntry is a NavItem resolved against the current request path.
type NavEntry struct {
	NavItem
	Active bool `json:"active"`
}

var patientNav = []NavItem{
	{Label: "Dashboard", Path: "/patient", Icon: "LayoutDashboard"},
	{Label: "Appointments", Path: "/patient/appointments", Icon: "Calendar"},
	{Label: "Medical Reports", Path: "/patient/reports", Icon: "FileText"},
	{Label: "Prescriptions", Path: "/patient/prescriptions", Icon: "Pill"},
	{Label: "Health Timeline", Path: "/patient/timeline", Icon: "Activity"},
}

var doctorNav = []NavItem{
	{Label: "Dashboard", Path: "/doctor", Icon: "LayoutDashboard"},
	{Label: "Patients", Path: "/doctor/patients", Icon: "Users"},
	{Label: "Appointments", Path: "/doctor/appointments", Icon: "Calendar"},
}

// Navigation returns a copy of the role's sidebar items.
func Navigation(role Role) []NavItem {
	var src []NavItem
	switch role {
	case RolePatient:
		src = patientNav
	case RoleDoctor:
		src = doctorNav
	default:
		return nil
	}
	out := make([]NavItem, len(src))
	copy(out, src)
	return out
}

// ResolveNavigation marks the active item for path. The section root is
// active only on an exact match; other items also match their sub-paths.
func ResolveNavigation(role Role, path string) []NavEntry {
	items := Navigation(role)
	entries := make([]NavEntry, 0, len(items))
	for _, item := range items {
		active := path == item.Path
		if !active && item.Path != role.Home() {
			active = strings.HasPrefix(path, item.Path)
		}
		entries = append(entries, NavEntry{NavItem: item, Active: active})
	}
	return entries
}

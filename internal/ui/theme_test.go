package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Slate":    "Nightfox",
		"Unknown":  "Nightfox",
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got, name)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesDefineEveryStatus(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []string{"idle", "sending", "success", "failure"} {
			if th.StatusColors[status] == "" {
				t.Fatalf("theme %s has no color for %q", name, status)
			}
		}
	}
}

func TestWithBackgroundKeepsStatusColors(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles().WithBackground(th.Surface)
	if styles.muted != th.Muted || styles.statusColors["failure"] != th.StatusColors["failure"] {
		t.Fatalf("WithBackground dropped status colors: muted=%q failure=%q", styles.muted, styles.statusColors["failure"])
	}
}

func TestWithBackgroundAppliesToCalendarStyles(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles().WithBackground(th.FocusBg)
	for name, st := range map[string]lipgloss.Style{
		"Day":       styles.Day,
		"Weekend":   styles.Weekend,
		"PickedDay": styles.PickedDay,
		"QueuedDay": styles.QueuedDay,
	} {
		if got := st.GetBackground(); got != lipgloss.Color(th.FocusBg) {
			t.Fatalf("%s background = %v, want %s", name, got, th.FocusBg)
		}
	}
	if got := th.Styles().Day.GetBackground(); got == lipgloss.Color(th.FocusBg) {
		t.Fatalf("WithBackground modified the original styles")
	}
}

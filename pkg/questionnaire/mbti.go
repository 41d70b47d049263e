package questionnaire

import "strings"

// MBTITypes is the fixed 16-item enumeration backing the personality-type
// grid. Single-select for "my type", multi-select for "preferred types".
var MBTITypes = []string{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

// IsMBTIType reports membership in the fixed enumeration.
func IsMBTIType(s string) bool {
	return contains(MBTITypes, strings.ToUpper(s))
}

// MBTIAxes is the 4-axis slider state of the preferred-types selector.
// Each axis runs 0..100: EI (0=strongly E, 100=strongly I), SN, TF, JP.
type MBTIAxes struct {
	EI int `json:"ei"`
	SN int `json:"sn"`
	TF int `json:"tf"`
	JP int `json:"jp"`
}

func clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Clamp bounds every axis into [0,100].
func (a MBTIAxes) Clamp() MBTIAxes {
	return MBTIAxes{
		EI: clampAxis(a.EI),
		SN: clampAxis(a.SN),
		TF: clampAxis(a.TF),
		JP: clampAxis(a.JP),
	}
}

// AxesForType maps a type code to its pole positions (0 or 100 per axis).
func AxesForType(code string) (MBTIAxes, bool) {
	code = strings.ToUpper(code)
	if len(code) != 4 || !IsMBTIType(code) {
		return MBTIAxes{}, false
	}
	axes := MBTIAxes{}
	if code[0] == 'I' {
		axes.EI = 100
	}
	if code[1] == 'N' {
		axes.SN = 100
	}
	if code[2] == 'F' {
		axes.TF = 100
	}
	if code[3] == 'P' {
		axes.JP = 100
	}
	return axes, true
}

// Compatibility scores how close two axis states sit, 0..100. It is the
// mean per-axis closeness: 100 minus the absolute distance on each axis.
func Compatibility(a, b MBTIAxes) int {
	a, b = a.Clamp(), b.Clamp()
	total := axisCloseness(a.EI, b.EI) +
		axisCloseness(a.SN, b.SN) +
		axisCloseness(a.TF, b.TF) +
		axisCloseness(a.JP, b.JP)
	return total / 4
}

func axisCloseness(x, y int) int {
	d := x - y
	if d < 0 {
		d = -d
	}
	return 100 - d
}

// TypeCompatibility scores two type codes directly via their pole axes.
func TypeCompatibility(a, b string) (int, bool) {
	axesA, ok := AxesForType(a)
	if !ok {
		return 0, false
	}
	axesB, ok := AxesForType(b)
	if !ok {
		return 0, false
	}
	return Compatibility(axesA, axesB), true
}

// MBTIGrid is the selection state of the personality-type grid widget.
type MBTIGrid struct {
	// Multi switches between the single-select "my type" variant and the
	// multi-select "preferred types" variant.
	Multi    bool
	Selected []string
	Axes     MBTIAxes
}

// Toggle flips selection of a type code. In single-select mode the previous
// selection is replaced. Unknown codes are ignored.
func (g *MBTIGrid) Toggle(code string) {
	code = strings.ToUpper(code)
	if !IsMBTIType(code) {
		return
	}
	for i, c := range g.Selected {
		if c == code {
			g.Selected = append(g.Selected[:i], g.Selected[i+1:]...)
			return
		}
	}
	if !g.Multi {
		g.Selected = g.Selected[:0]
	}
	g.Selected = append(g.Selected, code)
}

// Valid requires at least one selected type.
func (g *MBTIGrid) Valid() bool {
	return len(g.Selected) >= 1
}

// Value reports the selection as the grid's answer: a single choice for the
// "my type" variant, a choice list for "preferred types".
func (g *MBTIGrid) Value() AnswerValue {
	if g.Multi {
		return ChoicesValue(append([]string(nil), g.Selected...))
	}
	if len(g.Selected) == 0 {
		return AnswerValue{}
	}
	return ChoiceValue(g.Selected[0])
}

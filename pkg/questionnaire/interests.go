package questionnaire

import "strings"

// DefaultMinInterests is the floor applied when a question carries no
// explicit minSelections rule.
const DefaultMinInterests = 5

// InterestCategory groups related interest tags for display.
type InterestCategory struct {
	Name string
	Tags []string
}

// InterestCatalog is the static, category-grouped tag catalog.
type InterestCatalog []InterestCategory

// DefaultInterestCatalog is the built-in catalog served to clients and used
// by the seeder. Tags are stable identifiers; display strings come from i18n.
var DefaultInterestCatalog = InterestCatalog{
	{Name: "Active", Tags: []string{
		"running", "hiking", "climbing", "yoga", "swimming", "cycling",
		"tennis", "skiing", "surfing", "dancing", "martial_arts", "gym",
	}},
	{Name: "Creative", Tags: []string{
		"photography", "painting", "writing", "pottery", "singing",
		"playing_music", "drawing", "filmmaking", "crafts", "design",
	}},
	{Name: "Food & Drink", Tags: []string{
		"cooking", "baking", "wine", "coffee", "craft_beer", "foodie",
		"vegetarian", "brunch", "street_food",
	}},
	{Name: "Culture", Tags: []string{
		"reading", "museums", "theater", "concerts", "cinema", "history",
		"languages", "poetry", "architecture",
	}},
	{Name: "Lifestyle", Tags: []string{
		"travel", "camping", "gardening", "volunteering", "meditation",
		"board_games", "video_games", "pets", "astrology", "fashion",
		"sustainability", "podcasts",
	}},
}

// AllTags flattens the catalog into one ordered tag list.
func (c InterestCatalog) AllTags() []string {
	var tags []string
	for _, cat := range c {
		tags = append(tags, cat.Tags...)
	}
	return tags
}

// Filter narrows the catalog to tags containing query (case-insensitive
// substring). An empty query returns the catalog unchanged. Categories left
// without tags are dropped.
func (c InterestCatalog) Filter(query string) InterestCatalog {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c
	}
	var out InterestCatalog
	for _, cat := range c {
		var tags []string
		for _, tag := range cat.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				tags = append(tags, tag)
			}
		}
		if len(tags) > 0 {
			out = append(out, InterestCategory{Name: cat.Name, Tags: tags})
		}
	}
	return out
}

// InterestPicker is the selection state of the tag picker widget.
type InterestPicker struct {
	Selected []string
	Min      int // 0 means DefaultMinInterests
	Max      int // 0 means unlimited
}

// Toggle flips membership of tag. Selecting past Max is a no-op; the list
// length never exceeds the cap. Returns the resulting membership.
func (p *InterestPicker) Toggle(tag string) bool {
	for i, t := range p.Selected {
		if t == tag {
			p.Selected = append(p.Selected[:i], p.Selected[i+1:]...)
			return false
		}
	}
	if p.Max > 0 && len(p.Selected) >= p.Max {
		return false
	}
	p.Selected = append(p.Selected, tag)
	return true
}

// Valid reports whether the current selection satisfies the floor and,
// when set, the cap.
func (p *InterestPicker) Valid() bool {
	min := p.Min
	if min <= 0 {
		min = DefaultMinInterests
	}
	if len(p.Selected) < min {
		return false
	}
	if p.Max > 0 && len(p.Selected) > p.Max {
		return false
	}
	return true
}

// Value returns the selection as an AnswerValue.
func (p *InterestPicker) Value() AnswerValue {
	return ChoicesValue(append([]string(nil), p.Selected...))
}

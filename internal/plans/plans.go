package plans

// ID is the compact plan tag carried in callback payloads.
type ID string

const (
	TwoWeeks    ID = "plan_2"
	OneMonth    ID = "plan_1"
	ThreeMonths ID = "plan_3"
)

type Plan struct {
	ID           ID
	DurationDays int
	Price        int
	Label        string
}

// table is the single source of truth for plan duration and price.
var table = map[ID]Plan{
	TwoWeeks:    {ID: TwoWeeks, DurationDays: 14, Price: 30, Label: "2 недели"},
	OneMonth:    {ID: OneMonth, DurationDays: 30, Price: 50, Label: "1 месяц"},
	ThreeMonths: {ID: ThreeMonths, DurationDays: 90, Price: 100, Label: "3 месяца"},
}

// menuOrder is the order plans are shown in the tariff menu.
var menuOrder = []ID{TwoWeeks, OneMonth, ThreeMonths}

func All() []Plan {
	out := make([]Plan, 0, len(menuOrder))
	for _, id := range menuOrder {
		out = append(out, table[id])
	}
	return out
}

func ByID(id ID) (Plan, bool) {
	p, ok := table[id]
	return p, ok
}

func Parse(s string) (ID, bool) {
	id := ID(s)
	_, ok := table[id]
	return id, ok
}

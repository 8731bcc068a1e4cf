package viewmodel

import (
	"strconv"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/pricing"
)

// Stat is one of the hero counters; Key is the dictionary suffix.
type Stat struct {
	Key   string
	Value string
}

type Benefit struct {
	TitleKey string
	DescKey  string
	StatKey  string
}

type Testimonial struct {
	Name  string
	Role  string
	Quote string
}

// Pricing is the data of the pricing section.
type Pricing struct {
	Cycle models.BillingCycle
	Cards []pricing.PlanCard
}

type Landing struct {
	Layout
	Stats        []Stat
	Subjects     []string
	Features     []Benefit
	Teachers     []Benefit
	Schools      []Benefit
	Testimonials []Testimonial
	Pricing      Pricing
}

func NewLanding(layout Layout, p Pricing) Landing {
	return Landing{
		Layout: layout,
		Stats: []Stat{
			{Key: "teachers", Value: "2,500+"},
			{Key: "papers", Value: "1M+"},
			{Key: "time", Value: "85%"},
		},
		Subjects: []string{"arabic", "english", "math", "physics", "chemistry"},
		Features: []Benefit{
			{TitleKey: "features.handwriting.title", DescKey: "features.handwriting.desc", StatKey: "features.handwriting.stat"},
			{TitleKey: "features.text.title", DescKey: "features.text.desc", StatKey: "features.text.stat"},
			{TitleKey: "features.analytics.title", DescKey: "features.analytics.desc", StatKey: "features.analytics.stat"},
			{TitleKey: "features.training.title", DescKey: "features.training.desc", StatKey: "features.training.stat"},
		},
		Teachers: benefits("teachers", 3),
		Schools:  benefits("schools", 4),
		Testimonials: []Testimonial{
			{Name: "Dr. Heba Mohamed", Role: "Arabic Teacher", Quote: "Zaker AI has completely transformed how I grade papers. What used to take me 4 hours now takes 30 minutes. My students get better feedback too!"},
			{Name: "Ahmed Farouk", Role: "Math Department Head", Quote: "The accuracy of the AI correction is remarkable. It catches mistakes I sometimes miss and provides consistent grading across all papers."},
			{Name: "Fatma El-Sayed", Role: "English Teacher", Quote: "My students' writing has improved significantly since I started using Zaker AI. The detailed feedback helps them understand their mistakes better."},
			{Name: "Dr. Khaled Mansour", Role: "School Principal", Quote: "Implementing Zaker AI across our school has standardized our assessment quality. Teachers love it, and parents appreciate the detailed reports."},
		},
		Pricing: p,
	}
}

func benefits(section string, n int) []Benefit {
	out := make([]Benefit, 0, n)
	for i := 1; i <= n; i++ {
		prefix := section + ".benefit" + strconv.Itoa(i)
		out = append(out, Benefit{TitleKey: prefix + ".title", DescKey: prefix + ".desc"})
	}
	return out
}

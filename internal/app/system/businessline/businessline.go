// internal/app/system/businessline/businessline.go

// Package businessline tags services with the coarse line of business
// they belong to. Classification is purely rule-based: an exact category
// lookup first, then ordered keyword tests against the service name, so
// the same inputs always produce the same tag.
package businessline

import (
	"regexp"
	"sort"
	"strings"
)

// Line is one of the closed set of business-line tags.
type Line string

const (
	StudyApplication  Line = "study_application"
	LanguageTraining  Line = "language_training"
	StandardizedTest  Line = "standardized_test"
	AcademicSupport   Line = "academic_support"
	ResearchGuidance  Line = "research_guidance"
	PortfolioCoaching Line = "portfolio_coaching"
	VisaService       Line = "visa_service"
	AppealService     Line = "appeal_service"
	Other             Line = "other"
)

// priority is the fixed total order used for sorting a student's lines
// and for picking the primary line. Lower index sorts first.
var priority = []Line{
	StudyApplication,
	LanguageTraining,
	StandardizedTest,
	AcademicSupport,
	ResearchGuidance,
	PortfolioCoaching,
	VisaService,
	AppealService,
	Other,
}

var priorityIdx = func() map[Line]int {
	m := make(map[Line]int, len(priority))
	for i, l := range priority {
		m[l] = i
	}
	return m
}()

// Rank returns the position of the line in the fixed priority order.
// Unknown values rank after everything, same as Other.
func Rank(l Line) int {
	if i, ok := priorityIdx[l]; ok {
		return i
	}
	return len(priority)
}

// categories is the exact-match lookup from the service category field.
var categories = map[string]Line{
	"留学申请": StudyApplication,
	"语言培训": LanguageTraining,
	"标化考试": StandardizedTest,
	"学术辅导": AcademicSupport,
	"科研指导": ResearchGuidance,
	"背景提升": PortfolioCoaching,
	"签证服务": VisaService,
	"申诉服务": AppealService,
}

var testNameRe = regexp.MustCompile(`(?i)\b(SAT|ACT|GRE|GMAT|AP|IB|A-?Level)\b`)

// nameRules are the fallback keyword tests over the service name,
// evaluated in order; the first hit wins.
var nameRules = []struct {
	line  Line
	match func(name string) bool
}{
	{StudyApplication, containsAny("申请", "网申", "文书", "选校")},
	{StandardizedTest, testNameRe.MatchString},
	{LanguageTraining, containsAny("雅思", "托福", "多邻国", "口语", "语言", "IELTS", "TOEFL")},
	{ResearchGuidance, containsAny("科研", "论文", "学术研究")},
	{AcademicSupport, containsAny("辅导", "补习", "先修", "GPA")},
	{PortfolioCoaching, containsAny("背景", "实习", "竞赛", "作品集", "活动规划")},
	{VisaService, containsAny("签证", "visa", "Visa", "VISA")},
	{AppealService, containsAny("申诉", "argue", "appeal")},
}

func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// Classify maps one service's category and name to exactly one line.
// It never returns an empty tag: inputs matching nothing are Other.
func Classify(category, name string) Line {
	if line, ok := categories[strings.TrimSpace(category)]; ok {
		return line
	}
	name = strings.TrimSpace(name)
	for _, rule := range nameRules {
		if rule.match(name) {
			return rule.line
		}
	}
	return Other
}

// ForServices returns the deduplicated set of lines over a student's
// services, sorted by the fixed priority order. Students with no
// services (or none that classify) get [Other] so the set is never empty.
func ForServices(pairs [][2]string) []Line {
	seen := make(map[Line]bool)
	var lines []Line
	for _, p := range pairs {
		l := Classify(p[0], p[1])
		if !seen[l] {
			seen[l] = true
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return []Line{Other}
	}
	sort.Slice(lines, func(i, j int) bool { return Rank(lines[i]) < Rank(lines[j]) })
	return lines
}

// Primary returns the highest-priority line of a non-empty sorted set.
func Primary(lines []Line) Line {
	if len(lines) == 0 {
		return Other
	}
	return lines[0]
}

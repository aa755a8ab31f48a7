// Package retrieval implements scored search over the curated notes,
// question-paper, and campus-info catalogs. Scores are additive
// keyword-evidence points; results sort by score descending.
package retrieval

import (
	"sort"
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/fuzzy"
	"github.com/campusflow/campus-assistant-go/internal/storage"
	"github.com/campusflow/campus-assistant-go/internal/textutil"
)

// Notes scoring weights.
const (
	subjectNameScore    = 40
	subjectKeywordScore = 30
	subjectFuzzyScore   = 15
	unitNameScore       = 35
	unitKeywordScore    = 30
	unitFuzzyScore      = 15
)

// Question-paper scoring weights.
const (
	paperNameScore    = 40
	paperKeywordScore = 30
	paperFuzzyScore   = 15
	paperTypeScore    = 20
)

// Info scoring weights.
const (
	infoExactKeywordScore  = 100
	infoKeywordScore       = 50
	infoKeywordFuzzyScore  = 30
	infoTitleScore         = 60
	infoTitleFuzzyScore    = 40
	infoContentScore       = 20
	infoPermissiveMinScore = 50
)

// Fuzzy acceptance thresholds.
const (
	keywordFuzzyThreshold = 70
	infoFuzzyThreshold    = 85
)

// NoteResult is one matching unit of study material.
type NoteResult struct {
	Subject  string `json:"subject"`
	Unit     string `json:"unit"`
	Filename string `json:"filename"`
	Score    int    `json:"score"`
}

// PaperResult is one matching question paper.
type PaperResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Filename string `json:"filename"`
	Score    int    `json:"score"`
}

// InfoResult is one matching campus-info item.
type InfoResult struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Score   int    `json:"score"`
}

// scoreNotes walks the catalog and scores every unit. Unit scores
// inherit their subject's evidence so a strong subject match surfaces
// all of its units.
func scoreNotes(subjects map[string]storage.Subject, query string) []NoteResult {
	var results []NoteResult
	for name, subject := range subjects {
		subjectScore := 0
		lowerName := strings.ToLower(name)
		if strings.Contains(query, lowerName) || strings.Contains(lowerName, query) {
			subjectScore += subjectNameScore
		}
		subjectScore += keywordEvidence(subject.Keywords, query, subjectKeywordScore, subjectFuzzyScore)

		for unitName, unit := range subject.Units {
			score := subjectScore
			if strings.Contains(query, strings.ToLower(unitName)) {
				score += unitNameScore
			}
			score += keywordEvidence(unit.Keywords, query, unitKeywordScore, unitFuzzyScore)
			if score > 0 {
				results = append(results, NoteResult{
					Subject:  name,
					Unit:     unitName,
					Filename: unit.Filename,
					Score:    score,
				})
			}
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Subject != results[j].Subject {
			return results[i].Subject < results[j].Subject
		}
		return results[i].Unit < results[j].Unit
	})
	return results
}

func scorePapers(papers map[string]storage.PastPaper, query string) []PaperResult {
	var results []PaperResult
	for id, paper := range papers {
		score := 0
		if name := strings.ToLower(paper.Name); name != "" && strings.Contains(query, name) {
			score += paperNameScore
		}
		score += keywordEvidence(paper.Keywords, query, paperKeywordScore, paperFuzzyScore)
		if t := strings.ToLower(paper.Type); t != "" && strings.Contains(query, t) {
			score += paperTypeScore
		}
		if score > 0 {
			results = append(results, PaperResult{
				ID:       id,
				Name:     paper.Name,
				Type:     paper.Type,
				Filename: paper.Filename,
				Score:    score,
			})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})
	return results
}

// keywordEvidence scores a keyword list against the query: substring
// presence earns full points per keyword, otherwise a close fuzzy match
// earns the reduced score.
func keywordEvidence(keywords []string, query string, full, fuzzyPts int) int {
	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(query, kw) {
			score += full
		} else if fuzzy.PartialRatio(kw, query) > keywordFuzzyThreshold {
			score += fuzzyPts
		}
	}
	return score
}

// scoreInfoExact implements the strict policy: an item matches only
// when one of its keywords equals the whole normalized query.
func scoreInfoExact(info map[string]storage.InfoSection, query string) []InfoResult {
	var results []InfoResult
	for section, sec := range info {
		for _, item := range sec.Items {
			for _, kw := range item.Keywords {
				if textutil.Normalize(kw) == query {
					results = append(results, InfoResult{
						Section: section,
						Title:   item.Title,
						Content: item.Content,
						Score:   infoExactKeywordScore,
					})
					break
				}
			}
		}
	}
	sortInfo(results)
	return results
}

// scoreInfoPermissive implements the weighted policy: keyword, title,
// and content evidence accumulate and items at or above the threshold
// match.
func scoreInfoPermissive(info map[string]storage.InfoSection, query string) []InfoResult {
	var results []InfoResult
	for section, sec := range info {
		for _, item := range sec.Items {
			score := bestKeywordEvidence(item.Keywords, query)

			title := textutil.Normalize(item.Title)
			if title != "" {
				if strings.Contains(query, title) || strings.Contains(title, query) {
					score += infoTitleScore
				} else if fuzzy.Ratio(title, query) > infoFuzzyThreshold {
					score += infoTitleFuzzyScore
				}
			}
			if content := strings.ToLower(item.Content); content != "" && strings.Contains(content, query) {
				score += infoContentScore
			}

			if score >= infoPermissiveMinScore {
				results = append(results, InfoResult{
					Section: section,
					Title:   item.Title,
					Content: item.Content,
					Score:   score,
				})
			}
		}
	}
	sortInfo(results)
	return results
}

// bestKeywordEvidence scores the single strongest keyword: exact match
// beats substring beats fuzzy.
func bestKeywordEvidence(keywords []string, query string) int {
	best := 0
	for _, kw := range keywords {
		kw = textutil.Normalize(kw)
		if kw == "" {
			continue
		}
		switch {
		case kw == query:
			return infoExactKeywordScore
		case strings.Contains(query, kw):
			if best < infoKeywordScore {
				best = infoKeywordScore
			}
		case fuzzy.Ratio(kw, query) > infoFuzzyThreshold:
			if best < infoKeywordFuzzyScore {
				best = infoKeywordFuzzyScore
			}
		}
	}
	return best
}

func sortInfo(results []InfoResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Section != results[j].Section {
			return results[i].Section < results[j].Section
		}
		return results[i].Title < results[j].Title
	})
}

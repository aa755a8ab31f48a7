// Verify checks a data directory's documents offline: every catalog
// parses into its schema and cross-document identifiers are unique.
// Exits non-zero when any check fails, so it can gate deployments.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/campusflow/campus-assistant-go/internal/storage"
)

var dataDirFlag = flag.String("data", "", "Data directory to verify (defaults to $DATA_DIR or ./data)")

type verifyResult struct {
	name    string
	passed  bool
	message string
}

func main() {
	flag.Parse()

	dir := *dataDirFlag
	if dir == "" {
		dir = os.Getenv("DATA_DIR")
	}
	if dir == "" {
		dir = "./data"
	}

	fmt.Println("Campus Assistant - Data Directory Verification")
	fmt.Println("==============================================")
	fmt.Printf("Data dir: %s\n", dir)

	var results []verifyResult
	results = append(results, verifySubjects(dir))
	results = append(results, verifyPapers(dir))
	results = append(results, verifyInfo(dir))
	results = append(results, verifySynonyms(dir))
	results = append(results, verifyKnowledge(dir))
	results = append(results, verifyList(dir, storage.DocUnanswered, "unanswered queries"))
	results = append(results, verifyList(dir, storage.DocFeedback, "feedback entries"))
	results = append(results, verifyChats(dir))

	fmt.Println("\nResults:")
	fmt.Println("========")

	passed, failed := 0, 0
	for _, r := range results {
		status := "FAIL"
		if r.passed {
			status = "ok"
			passed++
		} else {
			failed++
		}
		fmt.Printf("[%s] %s: %s\n", status, r.name, r.message)
	}

	fmt.Printf("\nSummary: %d passed, %d failed\n", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// readDoc loads and unmarshals one document. Missing documents are
// fine: the store creates them with defaults on first write.
func readDoc(dir, name string, out any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, out)
}

func verifySubjects(dir string) verifyResult {
	var subjects map[string]storage.Subject
	found, err := readDoc(dir, storage.DocSubjects, &subjects)
	if err != nil {
		return verifyResult{"subjects", false, err.Error()}
	}
	if !found {
		return verifyResult{"subjects", true, "absent (defaults apply)"}
	}

	units := 0
	for name, subject := range subjects {
		if strings.TrimSpace(name) == "" {
			return verifyResult{"subjects", false, "empty subject name"}
		}
		for unitName, unit := range subject.Units {
			units++
			if strings.TrimSpace(unitName) == "" {
				return verifyResult{"subjects", false, fmt.Sprintf("subject %q has an unnamed unit", name)}
			}
			if unit.Filename == "" {
				return verifyResult{"subjects", false, fmt.Sprintf("unit %q of %q has no filename", unitName, name)}
			}
		}
	}
	return verifyResult{"subjects", true, fmt.Sprintf("%d subjects, %d units", len(subjects), units)}
}

func verifyPapers(dir string) verifyResult {
	var papers map[string]storage.PastPaper
	found, err := readDoc(dir, storage.DocPYQ, &papers)
	if err != nil {
		return verifyResult{"pyq", false, err.Error()}
	}
	if !found {
		return verifyResult{"pyq", true, "absent (defaults apply)"}
	}

	for id, paper := range papers {
		if paper.ID != id {
			return verifyResult{"pyq", false, fmt.Sprintf("paper keyed %q carries id %q", id, paper.ID)}
		}
		if strings.TrimSpace(paper.Name) == "" {
			return verifyResult{"pyq", false, fmt.Sprintf("paper %q has no name", id)}
		}
		if paper.Filename == "" {
			return verifyResult{"pyq", false, fmt.Sprintf("paper %q has no filename", id)}
		}
	}
	return verifyResult{"pyq", true, fmt.Sprintf("%d papers", len(papers))}
}

func verifyInfo(dir string) verifyResult {
	var info map[string]storage.InfoSection
	found, err := readDoc(dir, storage.DocInfo, &info)
	if err != nil {
		return verifyResult{"info", false, err.Error()}
	}
	if !found {
		return verifyResult{"info", true, "absent (defaults apply)"}
	}

	items := 0
	for section, sec := range info {
		seen := make(map[string]bool, len(sec.Items))
		for _, item := range sec.Items {
			items++
			if item.ID == "" {
				return verifyResult{"info", false, fmt.Sprintf("section %q has an item without id", section)}
			}
			if seen[item.ID] {
				return verifyResult{"info", false, fmt.Sprintf("section %q repeats item id %q", section, item.ID)}
			}
			seen[item.ID] = true
			if strings.TrimSpace(item.Content) == "" {
				return verifyResult{"info", false, fmt.Sprintf("item %q in %q has no content", item.ID, section)}
			}
		}
	}
	return verifyResult{"info", true, fmt.Sprintf("%d sections, %d items", len(info), items)}
}

func verifySynonyms(dir string) verifyResult {
	var synonyms map[string][]string
	found, err := readDoc(dir, storage.DocSynonyms, &synonyms)
	if err != nil {
		return verifyResult{"synonyms", false, err.Error()}
	}
	if !found {
		return verifyResult{"synonyms", true, "absent (defaults apply)"}
	}

	for canonical, variants := range synonyms {
		if strings.TrimSpace(canonical) == "" {
			return verifyResult{"synonyms", false, "empty canonical term"}
		}
		for _, v := range variants {
			if strings.TrimSpace(v) == "" {
				return verifyResult{"synonyms", false, fmt.Sprintf("term %q has an empty variant", canonical)}
			}
		}
	}
	return verifyResult{"synonyms", true, fmt.Sprintf("%d terms", len(synonyms))}
}

func verifyKnowledge(dir string) verifyResult {
	var entries []storage.KnowledgeEntry
	found, err := readDoc(dir, storage.DocKnowledge, &entries)
	if err != nil {
		return verifyResult{"knowledge", false, err.Error()}
	}
	if !found {
		return verifyResult{"knowledge", true, "absent (defaults apply)"}
	}

	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if e.ID <= 0 {
			return verifyResult{"knowledge", false, fmt.Sprintf("entry %q has non-positive id", e.Question)}
		}
		if seen[e.ID] {
			return verifyResult{"knowledge", false, fmt.Sprintf("repeated id %d", e.ID)}
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
			return verifyResult{"knowledge", false, fmt.Sprintf("entry %d missing question or answer", e.ID)}
		}
	}
	return verifyResult{"knowledge", true, fmt.Sprintf("%d entries", len(entries))}
}

// verifyList checks documents whose schema is a JSON array of objects.
func verifyList(dir, doc, label string) verifyResult {
	var entries []map[string]any
	found, err := readDoc(dir, doc, &entries)
	if err != nil {
		return verifyResult{doc, false, err.Error()}
	}
	if !found {
		return verifyResult{doc, true, "absent (defaults apply)"}
	}
	return verifyResult{doc, true, fmt.Sprintf("%d %s", len(entries), label)}
}

func verifyChats(dir string) verifyResult {
	chatsDir := filepath.Join(dir, storage.ChatsSubdir)
	entries, err := os.ReadDir(chatsDir)
	if os.IsNotExist(err) {
		return verifyResult{"chats", true, "absent (defaults apply)"}
	}
	if err != nil {
		return verifyResult{"chats", false, err.Error()}
	}

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(chatsDir, name))
		if err != nil {
			return verifyResult{"chats", false, err.Error()}
		}
		var chat storage.Chat
		if err := json.Unmarshal(raw, &chat); err != nil {
			return verifyResult{"chats", false, fmt.Sprintf("%s: %v", name, err)}
		}
		if chat.ID != strings.TrimSuffix(name, ".json") {
			return verifyResult{"chats", false, fmt.Sprintf("%s carries id %q", name, chat.ID)}
		}
		count++
	}
	return verifyResult{"chats", true, fmt.Sprintf("%d saved chats", count)}
}

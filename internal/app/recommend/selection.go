package recommend

import (
	"encoding/json"
	"sort"
	"strings"
)

// notesKeyLimit — сколько символов заметок участвует в ключе кэша
const notesKeyLimit = 100

// Selection — выбор пользователя на шаге "Training needs"
type Selection struct {
	Support  []string `json:"trainingSupport"`
	Outcomes []string `json:"outcomes"`
	Audience string   `json:"trainingAudience"`
	Notes    string   `json:"specificNotes"`
}

// CacheKey — канонический JSON выбора: теги отсортированы, заметки обрезаны
func (s Selection) CacheKey() string {
	key := struct {
		Support  []string `json:"support"`
		Outcomes []string `json:"outcomes"`
		Audience string   `json:"audience"`
		Notes    string   `json:"notes"`
	}{
		Support:  sortedCopy(s.Support),
		Outcomes: sortedCopy(s.Outcomes),
		Audience: s.Audience,
		Notes:    truncateRunes(s.Notes, notesKeyLimit),
	}
	data, _ := json.Marshal(key)
	return string(data)
}

func sortedCopy(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

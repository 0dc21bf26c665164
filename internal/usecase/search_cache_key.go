package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type internshipSearchCacheKeyInput struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func InternshipSearchCacheKey(params InternshipListParams) string {
	in := internshipSearchCacheKeyInput{
		Query:    normalizeSearchValue(params.Query),
		Location: normalizeSearchValue(params.Location),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "internships:search:" + hex.EncodeToString(sum[:])
}

func InternshipSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "internships:search:") {
		return "internships:lock:" + strings.TrimPrefix(searchKey, "internships:search:")
	}
	return "internships:lock:" + searchKey
}

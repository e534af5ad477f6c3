package utils

import (
	"sort"
	"strconv"
)

type AttributeCount struct {
	Attribute string
	Count     uint64
}

// SortAttributesByCount sorts attribute counters by count (descending), then
// by name (ascending)
func SortAttributesByCount(byAttribute map[string]uint64) []AttributeCount {
	var counts []AttributeCount
	for attr, count := range byAttribute {
		counts = append(counts, AttributeCount{Attribute: attr, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Attribute < counts[j].Attribute
		}
		return counts[i].Count > counts[j].Count
	})

	return counts
}

// FormatNumber formats a number with comma separators for readability
func FormatNumber(n uint64) string {
	str := strconv.FormatUint(n, 10)
	if len(str) <= 3 {
		return str
	}

	result := ""
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}

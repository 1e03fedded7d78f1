package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/goclub-go/pkg/goclub/models"
)

// FieldCount is the number of sheet columns mapped onto a GameRecord:
// stronger, weaker, handicap, winner, date, stronger rating, weaker rating,
// stronger win probability.
const FieldCount = 8

// Normalize maps the sheet's raw rows onto game records.
// Rows with a missing or malformed field are dropped and counted, never defaulted.
func Normalize(season int, sheet Sheet) (records []models.GameRecord, dropped int) {
	for _, row := range sheet.Rows {
		rec, ok := normalizeRow(row, sheet.Date1904)
		if !ok {
			dropped++
			continue
		}
		rec.Season = season
		records = append(records, rec)
	}
	return records, dropped
}

func normalizeRow(row []string, date1904 bool) (models.GameRecord, bool) {
	if len(row) < FieldCount {
		return models.GameRecord{}, false
	}
	for _, cell := range row[:FieldCount] {
		if strings.TrimSpace(cell) == "" {
			return models.GameRecord{}, false
		}
	}

	stronger := NormalizeName(row[0])
	weaker := NormalizeName(row[1])
	winner := NormalizeName(row[3])
	if stronger == weaker {
		return models.GameRecord{}, false
	}
	if winner != stronger && winner != weaker {
		return models.GameRecord{}, false
	}

	stones, ok := parseStones(row[2])
	if !ok {
		return models.GameRecord{}, false
	}
	date, ok := ParseDate(row[4], date1904)
	if !ok {
		return models.GameRecord{}, false
	}
	strongerRating, ok := parseNumber(row[5])
	if !ok {
		return models.GameRecord{}, false
	}
	weakerRating, ok := parseNumber(row[6])
	if !ok {
		return models.GameRecord{}, false
	}
	prob, ok := parseNumber(row[7])
	if !ok || prob < 0 || prob > 1 {
		return models.GameRecord{}, false
	}

	return models.GameRecord{
		StrongerPlayer:         stronger,
		WeakerPlayer:           weaker,
		HandicapStones:         stones,
		Winner:                 winner,
		Date:                   date,
		StrongerRating:         strongerRating,
		WeakerRating:           weakerRating,
		StrongerWinProbability: prob,
	}, true
}

// parseNumber parses a numeric cell, accepting a single decimal comma.
// Digit grouping such as "1,500" or "1.500,5" is ambiguous and rejected.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		if strings.Count(s, ",") != 1 || strings.Contains(s, ".") || isGrouped(s) {
			return 0, false
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isGrouped reports whether s looks like a thousands group: 1 to 3 leading
// digits without a leading zero, a comma, then exactly 3 digits.
func isGrouped(s string) bool {
	intPart, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ",")
	return len(frac) == 3 && len(intPart) >= 1 && len(intPart) <= 3 && intPart[0] != '0'
}

// parseStones parses a handicap, which must be a non-negative whole number.
func parseStones(s string) (int, bool) {
	f, ok := parseNumber(s)
	if !ok || f < 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

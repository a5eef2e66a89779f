package valueobject

import "strings"

// TweetSchemaStatus tags the outcome of a column check.
type TweetSchemaStatus string

const (
	SchemaColumnsPresent TweetSchemaStatus = "columns_present"
	SchemaColumnsMissing TweetSchemaStatus = "columns_missing"
)

// Tweet dataset column names.
const (
	ColumnAirlineSentiment = "airline_sentiment"
	ColumnText             = "text"
	ColumnAirline          = "airline"
	ColumnTweetCoord       = "tweet_coord"
	ColumnTweetCreated     = "tweet_created"
)

// RequiredTweetColumns must all be present before a dataset is processed.
var RequiredTweetColumns = []string{ColumnAirlineSentiment, ColumnText}

// coordinateColumnPairs are accepted alternatives to tweet_coord.
var coordinateColumnPairs = [][2]string{
	{"lat", "lon"},
	{"latitude", "longitude"},
}

// TweetSchemaResult is the tagged result of validating dataset columns.
type TweetSchemaResult struct {
	Status         TweetSchemaStatus
	Missing        []string
	HasAirline     bool
	HasCoordinates bool
	HasTimestamps  bool
}

// ValidateTweetColumns checks a header row against the tweet dataset schema.
func ValidateTweetColumns(columns []string) TweetSchemaResult {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[strings.TrimSpace(c)] = true
	}

	result := TweetSchemaResult{
		Status:        SchemaColumnsPresent,
		Missing:       []string{},
		HasAirline:    present[ColumnAirline],
		HasTimestamps: present[ColumnTweetCreated],
	}

	for _, required := range RequiredTweetColumns {
		if !present[required] {
			result.Missing = append(result.Missing, required)
		}
	}
	if len(result.Missing) > 0 {
		result.Status = SchemaColumnsMissing
	}

	result.HasCoordinates = present[ColumnTweetCoord]
	for _, pair := range coordinateColumnPairs {
		if present[pair[0]] && present[pair[1]] {
			result.HasCoordinates = true
		}
	}

	return result
}

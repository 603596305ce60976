package repository

import (
	"embed"
	"fmt"
	"strings"

	"github.com/umputun/feedreader/pkg/domain"
)

//go:embed schema
var schemaFS embed.FS

// field labels used in validation errors
const (
	fieldUsername     = "Username"
	fieldFeed         = "Feed"
	fieldArticleTitle = "Article title"
	fieldArticleBody  = "Article body"
)

// checkNotBlank fails with 400 if value is empty or whitespace only
func checkNotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.BadRequest("%s attribute cannot be empty", field)
	}
	return nil
}

// loadSchema reads DDL for a table in the given dialect and splits it into statements
func loadSchema(dialect, table string) ([]string, error) {
	data, err := schemaFS.ReadFile(fmt.Sprintf("schema/%s/%s.sql", dialect, table))
	if err != nil {
		return nil, fmt.Errorf("read %s schema for %s: %w", dialect, table, err)
	}
	return splitStatements(string(data)), nil
}

// splitStatements splits SQL script into statements by trailing semicolon, dropping comment-only lines
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)

		// skip comments and blank lines between statements
		if current.Len() == 0 && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}

		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	// statement without trailing semicolon
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}

	return statements
}

// userIDs collects ids of users returned by a name lookup
func userIDs(users []domain.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		if u.ID != nil {
			ids = append(ids, *u.ID)
		}
	}
	return ids
}

// subscriptionArgs makes (user_id, feed_name) argument sets linking every user id to feed
func subscriptionArgs(ids []int64, feed string) [][]any {
	res := make([][]any, 0, len(ids))
	for _, id := range ids {
		sub := domain.Subscription{UserID: id, FeedName: feed}
		res = append(res, []any{sub.UserID, sub.FeedName})
	}
	return res
}

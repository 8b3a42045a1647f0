// Package messages holds the user-facing console texts. Defaults are
// embedded; a JSON file with the same keys can override any of them.
package messages

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

//go:embed console.json
var defaultJSON []byte

type Messages struct {
	Welcome           string   `json:"welcome"`
	Menu              []string `json:"menu"`
	ChoicePrompt      string   `json:"choice_prompt"`
	TransactionPrompt string   `json:"transaction_prompt"`
	RulePrompt        string   `json:"rule_prompt"`
	StatementPrompt   string   `json:"statement_prompt"`
	TransactionAdded  string   `json:"transaction_added"`
	RuleAdded         string   `json:"rule_added"`
	NoData            string   `json:"no_data"`
	InvalidOption     string   `json:"invalid_option"`
	Goodbye           string   `json:"goodbye"`
}

var (
	defaults    Messages
	defaultOnce sync.Once
)

// Default returns a copy of the embedded texts.
func Default() *Messages {
	defaultOnce.Do(func() {
		if err := json.Unmarshal(defaultJSON, &defaults); err != nil {
			panic(fmt.Sprintf("messages: embedded console.json is invalid: %v", err))
		}
	})
	m := defaults
	m.Menu = append([]string(nil), defaults.Menu...)
	return &m
}

// Load reads path over the defaults. Keys missing from the file keep their
// default text. An empty path returns the defaults.
func Load(path string) (*Messages, error) {
	m := Default()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse messages file: %w", err)
	}
	return m, nil
}

package grammar

import (
	"strings"
	"testing"
)

func TestAnalyzeCommonMistakes(t *testing.T) {
	a := NewHeuristicAnalyzer()

	tests := []struct {
		name    string
		text    string
		inIssue string
		inTip   string
	}{
		{
			name:    "i is",
			text:    "I is happy today.",
			inIssue: "I am",
		},
		{
			name:    "bare verb after i am",
			text:    "I am study English every day.",
			inIssue: "studying",
		},
		{
			name:  "question word order",
			text:  "Where you live now?",
			inTip: "auxiliary",
		},
		{
			name:    "double spaces",
			text:    "I like  coffee very much.",
			inIssue: "double spaces",
		},
		{
			name:  "missing article",
			text:  "Yesterday I went to park with my dog.",
			inTip: "articles",
		},
		{
			name:    "lowercase sentence start",
			text:    "my friend lives in Berlin.",
			inIssue: "capital letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, tips := a.Analyze(tt.text)
			if tt.inIssue != "" && !anyContains(issues, tt.inIssue) {
				t.Errorf("issues %v missing %q", issues, tt.inIssue)
			}
			if tt.inTip != "" && !anyContains(tips, tt.inTip) {
				t.Errorf("tips %v missing %q", tips, tt.inTip)
			}
		})
	}
}

func TestAnalyzeCleanText(t *testing.T) {
	a := NewHeuristicAnalyzer()
	issues, tips := a.Analyze("I am studying English. My teacher is very kind, and I enjoy our lessons.")
	if len(issues) != 0 {
		t.Errorf("clean text flagged: %v", issues)
	}
	if len(tips) != 0 {
		t.Errorf("clean text tipped: %v", tips)
	}
}

func TestAnalyzeRunOn(t *testing.T) {
	a := NewHeuristicAnalyzer()
	long := strings.TrimSpace(strings.Repeat("word ", 25)) + "."
	issues, _ := a.Analyze("My day was good. " + long)
	if !anyContains(issues, "very long") {
		t.Errorf("run-on not flagged: %v", issues)
	}
}

func TestAnalyzeCapsFindings(t *testing.T) {
	a := NewHeuristicAnalyzer()
	// Trips many rules at once; output stays bounded.
	text := "i is tired  today and I am study all day i is very busy  now"
	issues, tips := a.Analyze(text)
	if len(issues) > maxIssues {
		t.Errorf("%d issues, cap is %d", len(issues), maxIssues)
	}
	if len(tips) > maxTips {
		t.Errorf("%d tips, cap is %d", len(tips), maxTips)
	}
}

func anyContains(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

package checker

import (
	"strings"
	"testing"

	"github.com/graphproof/confcheck/pkg/configuration"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// runCheck builds an r-ring with one interior hub adjacent to every ring
// vertex, runs the empty contraction, and returns the captured log messages
// of a full check.
func runCheck(t *testing.T, r int, filename string) []string {
	t.Helper()

	adjSet := make([]map[int]struct{}, r+1)
	for v := range adjSet {
		adjSet[v] = make(map[int]struct{})
	}
	for i := 0; i < r; i++ {
		adjSet[i][(i+1)%r] = struct{}{}
		adjSet[(i+1)%r][i] = struct{}{}
		adjSet[i][r] = struct{}{}
		adjSet[r][i] = struct{}{}
	}
	conf := configuration.New(r+1, r, adjSet)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	if err := conf.SetContract(nil, logger); err != nil {
		t.Fatal(err)
	}
	Check(conf, filename, logger)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	return messages
}

func TestCheckReportsDegree7Hub(t *testing.T) {
	messages := runCheck(t, 7, "wheel7.conf")

	foundFilename := false
	foundDegree7 := false
	for _, msg := range messages {
		if msg == "filename: wheel7.conf" {
			foundFilename = true
		}
		if msg == "7cut-16 (degree 7 in 7-cycle) is dangerous in wheel7.conf" {
			foundDegree7 = true
		}
	}
	if !foundFilename {
		t.Error("missing filename report")
	}
	if !foundDegree7 {
		t.Error("a lone degree-7 hub should be reported as dangerous")
	}
}

func TestCheckClearsDegree5Hub(t *testing.T) {
	for _, msg := range runCheck(t, 5, "wheel5.conf") {
		if strings.Contains(msg, "7cut-16") {
			t.Errorf("degree-5 hub wrongly reported: %s", msg)
		}
	}
}

// A bare ring realizes the assumed minimal cycle itself. Every cut pattern
// is excluded, and the only finding left is that no interior vertex of
// degree 7 exists either.
func TestCheckBareRing(t *testing.T) {
	conf := ringOnly(6)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	if err := conf.SetContract(nil, logger); err != nil {
		t.Fatal(err)
	}
	Check(conf, "ring6.conf", logger)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	want := []string{
		"filename: ring6.conf",
		"7cut-16 (degree 7 in 7-cycle) is dangerous in ring6.conf",
	}
	if len(messages) != len(want) || messages[0] != want[0] || messages[1] != want[1] {
		t.Fatalf("got %v, want %v", messages, want)
	}
}

// An interior vertex hidden behind a 3-cut of interior vertices must be
// reported as erased during the contraction step of a full run.
func TestCheckReportsErasedVertices(t *testing.T) {
	adjSet := make([]map[int]struct{}, 10)
	for v := range adjSet {
		adjSet[v] = make(map[int]struct{})
	}
	addEdge := func(u, v int) {
		adjSet[u][v] = struct{}{}
		adjSet[v][u] = struct{}{}
	}
	for i := 0; i < 6; i++ {
		addEdge(i, (i+1)%6)
	}
	addEdge(6, 7)
	addEdge(6, 8)
	addEdge(6, 9)
	addEdge(7, 8)
	addEdge(8, 9)
	addEdge(7, 9)
	addEdge(7, 0)
	addEdge(7, 1)
	addEdge(8, 2)
	addEdge(8, 3)
	addEdge(9, 4)
	addEdge(9, 5)
	conf := configuration.New(10, 6, adjSet)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	if err := conf.SetContract(nil, logger); err != nil {
		t.Fatal(err)
	}
	Check(conf, "hidden.conf", logger)

	var erased []string
	for _, entry := range logs.All() {
		if strings.Contains(entry.Message, " is erased by ") {
			erased = append(erased, entry.Message)
		}
	}
	want := []string{"vertex 6 is erased by 6", "vertex 6 is erased by 7"}
	if len(erased) != len(want) || erased[0] != want[0] || erased[1] != want[1] {
		t.Fatalf("erased reports: got %v, want %v", erased, want)
	}
}

func TestCheckReportFormat(t *testing.T) {
	for _, msg := range runCheck(t, 7, "wheel7.conf") {
		switch {
		case strings.HasPrefix(msg, "filename: "):
		case strings.HasPrefix(msg, "vertex ") && strings.Contains(msg, " is erased by "):
		case strings.HasPrefix(msg, "dangerous: may be a bridge"):
		case strings.Contains(msg, " is dangerous in wheel7.conf"):
		default:
			t.Errorf("unexpected report line: %q", msg)
		}
	}
}

package gitutil

import (
	"testing"

	"github.com/tether-cli/tether/pkg/models"
)

func TestParseRemotes(t *testing.T) {
	raw := "origin\tgit@bitbucket.example.com:proj/repo.git (fetch)\n" +
		"origin\tgit@bitbucket.example.com:proj/repo.git (push)\n" +
		"mirror\thttps://mirror.example.com/proj/repo.git (fetch)\n" +
		"mirror\thttps://mirror.example.com/proj/repo.git (push)\n"

	remotes := parseRemotes(raw)

	want := []models.Remote{
		{Name: "origin", URL: "git@bitbucket.example.com:proj/repo.git"},
		{Name: "mirror", URL: "https://mirror.example.com/proj/repo.git"},
	}
	if len(remotes) != len(want) {
		t.Fatalf("parseRemotes returned %d remotes, want %d", len(remotes), len(want))
	}
	for i := range want {
		if remotes[i] != want[i] {
			t.Errorf("remote %d = %+v, want %+v", i, remotes[i], want[i])
		}
	}
}

func TestParseRemotesEmpty(t *testing.T) {
	if remotes := parseRemotes(""); len(remotes) != 0 {
		t.Errorf("expected no remotes, got %v", remotes)
	}
}

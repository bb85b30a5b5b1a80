package model

import (
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// RepositoryInfo identifies a GitHub repository regardless of the protocol of the URL it was taken from.
type RepositoryInfo struct {
	Server string
	Owner  string
	Name   string
}

// ParseGitURL extracts repository info from a git remote URL such as
// https://github.com/owner/name.git, git://github.com/owner/name.git,
// ssh://git@github.com/owner/name or git@github.com:owner/name.git.
// It returns false if the URL does not point to exactly one owner/name pair.
// Server is the host without port, so ssh and https remotes of one GitHub
// Enterprise instance resolve to the same repository as the payload URLs.
func ParseGitURL(raw string) (RepositoryInfo, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RepositoryInfo{}, false
	}

	ep, err := transport.NewEndpoint(raw)
	if err != nil {
		return RepositoryInfo{}, false
	}
	if ep.Protocol == "file" || ep.Host == "" {
		return RepositoryInfo{}, false
	}

	path := strings.Trim(ep.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepositoryInfo{}, false
	}

	return RepositoryInfo{
		Server: ep.Host,
		Owner:  parts[0],
		Name:   parts[1],
	}, true
}

// Matches reports whether both infos point to the same repository. Server
// names are compared case-insensitively, owner and name exactly.
func (x RepositoryInfo) Matches(other RepositoryInfo) bool {
	return strings.EqualFold(x.Server, other.Server) &&
		x.Owner == other.Owner &&
		x.Name == other.Name
}

func (x RepositoryInfo) Key() types.RepositoryKey {
	return NewRepositoryKey(x.Server, x.Owner, x.Name)
}

func (x RepositoryInfo) String() string {
	return x.Owner + "/" + x.Name
}

func (x RepositoryInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server", x.Server),
		slog.String("owner", x.Owner),
		slog.String("name", x.Name),
	)
}

// NewRepositoryKey builds the storage key "server/owner/name". Trailing
// slashes of server are dropped, letter case is kept as is.
func NewRepositoryKey(server, owner, name string) types.RepositoryKey {
	return types.RepositoryKey(strings.TrimRight(server, "/") + "/" + owner + "/" + name)
}

// ParseRepositoryKey is the inverse of NewRepositoryKey.
func ParseRepositoryKey(key types.RepositoryKey) (RepositoryInfo, bool) {
	s := string(key)

	nameIdx := strings.LastIndex(s, "/")
	if nameIdx < 0 {
		return RepositoryInfo{}, false
	}
	ownerIdx := strings.LastIndex(s[:nameIdx], "/")
	if ownerIdx < 0 {
		return RepositoryInfo{}, false
	}

	info := RepositoryInfo{
		Server: s[:ownerIdx],
		Owner:  s[ownerIdx+1 : nameIdx],
		Name:   s[nameIdx+1:],
	}
	if info.Server == "" || info.Owner == "" || info.Name == "" {
		return RepositoryInfo{}, false
	}

	return info, true
}

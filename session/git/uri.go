package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ErrInvalidURI is returned for remotes that do not name a hosted repository.
var ErrInvalidURI = errors.New("invalid git uri")

// URI is the identity of a hosted repository derived from its remote.
type URI struct {
	Host  string `json:"host" yaml:"host"`
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name" yaml:"name"`
}

func (u URI) String() string {
	return u.Host + "/" + u.Owner + "/" + u.Name
}

// ParseURI extracts host, owner and repository name from a remote. It accepts
// scp-like ssh ("git@host:owner/name.git"), ssh://, git:// and http(s)://
// remotes. Local paths and file:// remotes have no host and are rejected.
// The owner may span several path segments, e.g. gitlab subgroups.
func ParseURI(remote string) (URI, error) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return URI{}, fmt.Errorf("%w: empty remote", ErrInvalidURI)
	}

	ep, err := transport.NewEndpoint(remote)
	if err != nil {
		return URI{}, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	switch ep.Protocol {
	case "ssh", "git", "http", "https":
	default:
		return URI{}, fmt.Errorf("%w: unsupported protocol %q", ErrInvalidURI, ep.Protocol)
	}
	if ep.Host == "" {
		return URI{}, fmt.Errorf("%w: missing host", ErrInvalidURI)
	}

	p := strings.Trim(ep.Path, "/")
	p = strings.TrimSuffix(p, ".git")
	idx := strings.LastIndex(p, "/")
	if idx <= 0 || idx == len(p)-1 {
		return URI{}, fmt.Errorf("%w: expected owner/name in %q", ErrInvalidURI, ep.Path)
	}

	return URI{
		Host:  ep.Host,
		Owner: p[:idx],
		Name:  p[idx+1:],
	}, nil
}

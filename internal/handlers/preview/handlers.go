package preview

import (
	"net/http"

	"github.com/vlatan/block-site/internal/config"
)

// Sessions starts and ends the draft mode
type Sessions interface {
	Enable(w http.ResponseWriter, r *http.Request) error
	Disable(w http.ResponseWriter, r *http.Request) error
}

type Service struct {
	sessions Sessions
	config   *config.Config
}

func New(sessions Sessions, config *config.Config) *Service {
	return &Service{
		sessions: sessions,
		config:   config,
	}
}

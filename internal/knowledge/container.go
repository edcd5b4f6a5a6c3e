package knowledge

import "github.com/saulo-duarte/quizgen/internal/config"

type KnowledgeContainer struct {
	Client   *WikipediaClient
	Provider ContextProvider
	Handler  *Handler
}

func NewKnowledgeContainer(cfg config.WikipediaSettings) *KnowledgeContainer {
	client := NewWikipediaClient(WikipediaConfig{
		APIURL:         cfg.APIURL,
		RESTURL:        cfg.RESTURL,
		UserAgent:      cfg.UserAgent,
		SearchTimeout:  cfg.SearchTimeout,
		ExtractTimeout: cfg.ExtractTimeout,
	})

	return &KnowledgeContainer{
		Client:   client,
		Provider: NewProvider(client),
		Handler:  NewHandler(client),
	}
}

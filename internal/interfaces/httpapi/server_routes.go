package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSheetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sheets/sync", handler.SyncSheet)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/settings", handler.GetSheetSettings)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{abbreviation}/players", handler.ListPlayersByTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/events", handler.ListRecentEvents)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/combinations", handler.GetMatchCombinations)
	mux.HandleFunc("GET /v1/combinations/upcoming", handler.ListUpcomingCombinations)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
}

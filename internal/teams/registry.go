package teams

import (
	"strings"

	"github.com/jadavison91/gametime/internal/models"
)

// sportByLeague maps the supported league identifiers to the sport
// segment of the scoreboard URL.
var sportByLeague = map[string]string{
	"nba":   "basketball",
	"nfl":   "football",
	"mlb":   "baseball",
	"nhl":   "hockey",
	"eng.1": "soccer",
	"eng.2": "soccer",
}

// SportForLeague resolves the sport identifier for a league; ok is
// false for leagues the service does not know.
func SportForLeague(league string) (string, bool) {
	sport, ok := sportByLeague[strings.ToLower(league)]
	return sport, ok
}

// Leagues returns the supported league identifiers.
func Leagues() []string {
	out := make([]string, 0, len(sportByLeague))
	for l := range sportByLeague {
		out = append(out, l)
	}
	return out
}

// nbaTeams is the reference roster for the NBA. Team identity is the
// (ID, League) pair; records are never mutated, only selected.
var nbaTeams = []models.Team{
	{ID: "1", Name: "Atlanta Hawks", Abbreviation: "ATL", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/atl.png"},
	{ID: "2", Name: "Boston Celtics", Abbreviation: "BOS", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/bos.png"},
	{ID: "17", Name: "Brooklyn Nets", Abbreviation: "BKN", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/bkn.png"},
	{ID: "30", Name: "Charlotte Hornets", Abbreviation: "CHA", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/cha.png"},
	{ID: "4", Name: "Chicago Bulls", Abbreviation: "CHI", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/chi.png"},
	{ID: "5", Name: "Cleveland Cavaliers", Abbreviation: "CLE", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/cle.png"},
	{ID: "6", Name: "Dallas Mavericks", Abbreviation: "DAL", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/dal.png"},
	{ID: "7", Name: "Denver Nuggets", Abbreviation: "DEN", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/den.png"},
	{ID: "8", Name: "Detroit Pistons", Abbreviation: "DET", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/det.png"},
	{ID: "9", Name: "Golden State Warriors", Abbreviation: "GS", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/gs.png"},
	{ID: "10", Name: "Houston Rockets", Abbreviation: "HOU", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/hou.png"},
	{ID: "11", Name: "Indiana Pacers", Abbreviation: "IND", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/ind.png"},
	{ID: "12", Name: "LA Clippers", Abbreviation: "LAC", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/lac.png"},
	{ID: "13", Name: "Los Angeles Lakers", Abbreviation: "LAL", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/lal.png"},
	{ID: "29", Name: "Memphis Grizzlies", Abbreviation: "MEM", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/mem.png"},
	{ID: "14", Name: "Miami Heat", Abbreviation: "MIA", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/mia.png"},
	{ID: "15", Name: "Milwaukee Bucks", Abbreviation: "MIL", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/mil.png"},
	{ID: "16", Name: "Minnesota Timberwolves", Abbreviation: "MIN", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/min.png"},
	{ID: "3", Name: "New Orleans Pelicans", Abbreviation: "NO", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/no.png"},
	{ID: "18", Name: "New York Knicks", Abbreviation: "NY", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/ny.png"},
	{ID: "25", Name: "Oklahoma City Thunder", Abbreviation: "OKC", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/okc.png"},
	{ID: "19", Name: "Orlando Magic", Abbreviation: "ORL", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/orl.png"},
	{ID: "20", Name: "Philadelphia 76ers", Abbreviation: "PHI", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/phi.png"},
	{ID: "21", Name: "Phoenix Suns", Abbreviation: "PHX", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/phx.png"},
	{ID: "22", Name: "Portland Trail Blazers", Abbreviation: "POR", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/por.png"},
	{ID: "23", Name: "Sacramento Kings", Abbreviation: "SAC", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/sac.png"},
	{ID: "24", Name: "San Antonio Spurs", Abbreviation: "SA", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/sa.png"},
	{ID: "28", Name: "Toronto Raptors", Abbreviation: "TOR", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/tor.png"},
	{ID: "26", Name: "Utah Jazz", Abbreviation: "UTAH", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/utah.png"},
	{ID: "27", Name: "Washington Wizards", Abbreviation: "WSH", Sport: "basketball", League: "nba", LogoURL: "https://a.espncdn.com/i/teamlogos/nba/500/wsh.png"},
}

var rosters = map[string][]models.Team{
	"nba": nbaTeams,
}

// Roster returns the reference teams for a league, nil when unknown.
func Roster(league string) []models.Team {
	return rosters[strings.ToLower(league)]
}

// FindTeam looks up a reference team by league and abbreviation.
func FindTeam(league, abbreviation string) (models.Team, bool) {
	for _, t := range Roster(league) {
		if strings.EqualFold(t.Abbreviation, abbreviation) {
			return t, true
		}
	}
	return models.Team{}, false
}

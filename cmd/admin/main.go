package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"pokerpot-server/internal/util"
	"pokerpot-server/pkg/history"
	"pokerpot-server/pkg/room"
	"pokerpot-server/pkg/table"
)

var command = flag.String("c", "stats", "specifies the command (stats, room, hands, cleanup)")
var code = flag.String("code", "", "the room code for the room and hands commands")
var server = flag.String("server", "", "the server URL, defaults to $POKERPOT_SERVER or http://localhost:5000")
var token = flag.String("token", "", "the admin token, defaults to $POKERPOT_ADMIN_TOKEN")

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	c := &client{
		baseURL: strings.TrimRight(*server, "/"),
		token:   *token,
		http:    &http.Client{Timeout: time.Second * 10},
	}

	if c.baseURL == "" {
		c.baseURL = util.Getenv("POKERPOT_SERVER", "http://localhost:5000")
	}

	if c.token == "" {
		c.token = os.Getenv("POKERPOT_ADMIN_TOKEN")
	}

	var err error
	switch *command {
	case "stats":
		err = c.stats()
	case "room":
		err = c.room(requireCode())
	case "hands":
		err = c.hands(requireCode())
	case "cleanup":
		err = c.cleanup()
	default:
		err = fmt.Errorf("unknown command: %s", *command)
	}

	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func requireCode() string {
	if *code == "" {
		pterm.Error.Println("-code is required")
		os.Exit(1)
	}

	return strings.ToUpper(*code)
}

func (c *client) stats() error {
	var stats room.Stats
	if err := c.do(http.MethodGet, "/stats", &stats); err != nil {
		return err
	}

	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Rooms", "Connected Players"},
		{strconv.Itoa(stats.Rooms), strconv.Itoa(stats.ConnectedPlayers)},
	}).Render()
}

func (c *client) room(code string) error {
	var snapshot table.Snapshot
	if err := c.do(http.MethodGet, "/room/"+code, &snapshot); err != nil {
		return err
	}

	state := snapshot.State
	pterm.DefaultSection.Printfln("Room %s", snapshot.Code)
	pterm.Info.Printfln("round %d, phase %s, pot %d, in progress %t", state.CurrentRound, state.Phase, state.Pot, state.InProgress)

	data := pterm.TableData{{"", "Player", "Balance", "Bet", "Seen", "Folded", "Connected"}}
	for _, p := range snapshot.Players {
		marker := ""
		if p.ID == snapshot.HostID {
			marker += "H"
		}

		if p.ID == state.CurrentTurnPlayerID {
			marker += "*"
		}

		data = append(data, []string{
			marker,
			p.Name,
			strconv.Itoa(p.Balance),
			strconv.Itoa(p.CurrentBet),
			strconv.FormatBool(p.HasSeenCards),
			strconv.FormatBool(p.HasFolded),
			strconv.FormatBool(p.IsConnected),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (c *client) hands(code string) error {
	var hands []history.HandRecord
	if err := c.do(http.MethodGet, "/room/"+code+"/hands", &hands); err != nil {
		return err
	}

	if len(hands) == 0 {
		pterm.Info.Printfln("no hands recorded for %s", code)
		return nil
	}

	data := pterm.TableData{{"Round", "Phase", "Pot", "Winners", "Settled"}}
	for _, h := range hands {
		winners := make([]string, 0, len(h.Payouts))
		for _, payout := range h.Payouts {
			winners = append(winners, fmt.Sprintf("%s (%d)", payout.PlayerID, payout.Amount))
		}

		data = append(data, []string{
			strconv.Itoa(h.Round),
			h.Phase,
			strconv.Itoa(h.Pot),
			strings.Join(winners, ", "),
			h.Created.Format(time.RFC3339),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (c *client) cleanup() error {
	var resp struct {
		Removed []string `json:"removed"`
		Count   int      `json:"count"`
	}

	if err := c.do(http.MethodPost, "/admin/cleanup", &resp); err != nil {
		return err
	}

	if resp.Count == 0 {
		pterm.Info.Println("no empty rooms to remove")
		return nil
	}

	pterm.Success.Printfln("removed %d rooms: %s", resp.Count, strings.Join(resp.Removed, ", "))
	return nil
}

func (c *client) do(method, path string, respObj interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Message string `json:"message"`
		}

		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, errResp.Message)
	}

	return json.NewDecoder(resp.Body).Decode(respObj)
}

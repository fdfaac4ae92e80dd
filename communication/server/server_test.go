package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"ataxx/communication"
	"ataxx/game"
	"ataxx/searcher"
	"ataxx/searcher/agent"
)

func newTestServer() *Server {
	a := agent.NewMinimaxAgent(searcher.WithDepth(1))
	return New(a, game.NewBoard())
}

func postMove(t *testing.T, ts *httptest.Server, move string) *http.Response {
	t.Helper()
	body, err := json.Marshal(communication.MoveRequest{Move: move})
	require.NoError(t, err)
	resp, err := http.Post(ts.URL+"/move", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestHandleState(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state communication.StateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	require.Equal(t, "red", state.NextPlayer)
	require.Equal(t, 2, state.RedPieces)
	require.Equal(t, 2, state.BluePieces)
	require.False(t, state.Over)
	require.Len(t, state.Board, game.Side)
	require.Equal(t, "r-----b", state.Board[0], "row 7 comes first")
}

func TestHandleMove(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Router())
	defer ts.Close()

	resp := postMove(t, ts, "a7a6")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result communication.MoveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Equal(t, "a7a6", result.Played)
	require.NotEmpty(t, result.Reply, "engine answers for blue")
	require.Equal(t, "red", result.State.NextPlayer, "back to the human after the reply")

	reply, err := game.ParseMove(result.Reply)
	require.NoError(t, err)
	require.False(t, reply.IsPass())
}

func TestHandleMoveRejectsIllegal(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Router())
	defer ts.Close()

	resp := postMove(t, ts, "a1a2") // blue piece, red to move
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleMoveRejectsMalformed(t *testing.T) {
	ts := httptest.NewServer(newTestServer().Router())
	defer ts.Close()

	resp := postMove(t, ts, "zz99")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStateRoundTrip(t *testing.T) {
	board := game.NewBoard()
	require.NoError(t, board.MakeMove(mustParse(t, "a7a6")))

	state := communication.NewStateResponse(board)
	rebuilt := state.ToBoard()

	require.Equal(t, board.PieceCount(game.Red), rebuilt.PieceCount(game.Red))
	require.Equal(t, board.PieceCount(game.Blue), rebuilt.PieceCount(game.Blue))
	require.Equal(t, board.WhoseMove(), rebuilt.WhoseMove())
	require.Equal(t, board.Jumps(), rebuilt.Jumps())
	require.Equal(t, board.String(), rebuilt.String())
}

func mustParse(t *testing.T, s string) game.Move {
	t.Helper()
	m, err := game.ParseMove(s)
	require.NoError(t, err)
	return m
}

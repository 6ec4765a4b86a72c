// Package dds adapts an external double-dummy solver as the expert-level
// strategy. The real solver is a native, platform-fragile dependency that
// is known to crash outright on some platforms, so it is never linked into
// this process: the shipped engine launches it as a subprocess with a
// deadline, and every failure mode — crash, timeout, garbage output, or a
// panic from a custom in-process Engine — degrades to the alpha-beta
// search at an elevated depth. Card selection never fails because the
// oracle did.
package dds

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/JFrunk/bridgeplay/deal"
	"github.com/JFrunk/bridgeplay/game"
)

// Request is the position handed to the solver: all four remaining hands,
// the trump strain, the trick in progress, and the seat to play. The
// double-dummy model is full information, so nothing is withheld.
type Request struct {
	Trump        string            `json:"trump"`
	ToPlay       string            `json:"to_play"`
	Hands        map[string]string `json:"hands"`
	CurrentTrick []string          `json:"current_trick"`
}

// Response is the solver's verdict: the optimal card and the number of
// tricks the side to play can still take against best defense.
type Response struct {
	Card   string `json:"card"`
	Tricks int    `json:"tricks"`
}

// Engine is a double-dummy solver. Implementations may be arbitrarily
// fragile; the Strategy in this package guards every call.
type Engine interface {
	Solve(ctx context.Context, req Request) (Response, error)
}

// buildRequest snapshots the game into solver input.
func buildRequest(g *game.Game, seat deal.Position) Request {
	req := Request{
		Trump:  g.Contract().Strain.String(),
		ToPlay: seat.String(),
		Hands:  map[string]string{},
	}
	for _, p := range deal.Positions() {
		req.Hands[p.String()] = g.Hand(p).String()
	}
	for _, play := range g.CurrentTrick().Plays {
		req.CurrentTrick = append(req.CurrentTrick, play.Card.String())
	}
	return req
}

// SubprocessEngine runs the native solver binary out of process. A solver
// crash is then just a non-zero exit, and the context deadline kills a
// hung solve. This is the isolation boundary the native library needs.
type SubprocessEngine struct {
	Path string
}

func (e *SubprocessEngine) Solve(ctx context.Context, req Request) (Response, error) {
	input, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}
	cmd := exec.CommandContext(ctx, e.Path)
	cmd.Stdin = bytes.NewReader(input)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return Response{}, fmt.Errorf("dds subprocess: %w", err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		return Response{}, fmt.Errorf("dds output: %w", err)
	}
	return resp, nil
}

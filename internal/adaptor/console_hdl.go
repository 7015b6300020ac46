package adaptor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"theater-reservation/internal/dto/request"
	"theater-reservation/internal/dto/response"
	"theater-reservation/internal/usecase"

	"go.uber.org/zap"
)

const (
	commandReserve = "reserve"
	commandShow    = "show"
	commandDone    = "done"
	commandHelp    = "help"

	answerYes = "yes"
	answerNo  = "no"
)

const (
	promptCommand    = "What would you like to do?"
	promptName       = "What's your name?"
	promptWheelchair = "Do you need wheelchair accessible seats? (yes/no)"

	msgInvalidYesNo   = "Invalid input. Please answer with 'yes' or 'no'."
	msgInvalidSeatNum = "Please enter a valid seat number to reserve"
	msgInvalidCommand = "Please enter a valid command. To get command guidance, please enter 'help' in console"
	msgFarewell       = "Thank you! Have a nice day!"

	msgNoSeatsTogether = response.MessageNoSeatsTogether
)

// ConsoleHandler runs the interactive reservation loop over a line-based
// reader and writer. It only translates text into requests; all seat logic
// lives behind usecase.ReservationService.
type ConsoleHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewConsoleHandler(service usecase.ReservationService, log *zap.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		service: service,
		log:     log.With(zap.String("handler", "console")),
	}
}

// session feeds input lines through a channel so a blocked read never
// keeps Run from noticing ctx cancellation.
type session struct {
	ctx     context.Context
	lines   chan string
	readErr error // set before lines is closed
	eof     bool
	out     io.Writer
}

func newSession(ctx context.Context, in io.Reader, out io.Writer) *session {
	s := &session{ctx: ctx, lines: make(chan string), out: out}

	go func() {
		defer close(s.lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case s.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		s.readErr = scanner.Err()
	}()

	return s
}

func (s *session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// readLine returns the next trimmed line; ok is false at end of input or
// once ctx is cancelled.
func (s *session) readLine() (string, bool) {
	select {
	case <-s.ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		if !ok {
			s.eof = true
			return "", false
		}
		return strings.TrimSpace(line), true
	}
}

// err reports a read failure once the input has been drained.
func (s *session) err() error {
	if !s.eof {
		return nil
	}
	return s.readErr
}

// Run reads commands until "done", end of input, or ctx is cancelled.
func (h *ConsoleHandler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := newSession(ctx, in, out)

	h.log.Info("Console session started")

	for ctx.Err() == nil {
		s.println(promptCommand)
		line, ok := s.readLine()
		if !ok {
			break
		}
		command := strings.ToLower(line)

		switch {
		case strings.Contains(command, commandReserve):
			h.reserve(ctx, s, command)
		case strings.Contains(command, commandShow):
			h.show(ctx, s)
		case strings.Contains(command, commandDone):
			s.println(msgFarewell)
			h.log.Info("Console session finished")
			return nil
		case strings.Contains(command, commandHelp):
			h.help(ctx, s)
		default:
			h.log.Debug("Unknown console command", zap.String("command", command))
			s.println(msgInvalidCommand)
		}
	}

	s.println(msgFarewell)
	h.log.Info("Console session finished", zap.Error(ctx.Err()))

	if err := s.err(); err != nil {
		return fmt.Errorf("read console input: %w", err)
	}
	return nil
}

func (h *ConsoleHandler) reserve(ctx context.Context, s *session, command string) {
	fields := strings.Fields(command)
	if len(fields) < 2 || !h.service.IsValidSeatCount(fields[1]) {
		s.println(msgInvalidSeatNum)
		return
	}

	count, _ := strconv.Atoi(fields[1])
	if !h.service.IsValidNumberForReservation(count) {
		s.println(msgNoSeatsTogether)
		return
	}

	name, ok := h.askName(s)
	if !ok {
		return
	}

	accessible, ok := h.askWheelchair(s)
	if !ok {
		return
	}

	outcome, err := h.service.ReserveSeats(ctx, &request.ReserveSeatsRequest{
		Count:      count,
		Name:       name,
		Accessible: accessible,
	})
	if err != nil {
		h.log.Error("Reserve seats failed", zap.Error(err))
		s.println(msgNoSeatsTogether)
		return
	}

	s.println(outcome.Message())
}

// askName prompts until a non-blank name is entered.
func (h *ConsoleHandler) askName(s *session) (string, bool) {
	for {
		s.println(promptName)
		name, ok := s.readLine()
		if !ok {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
}

func (h *ConsoleHandler) askWheelchair(s *session) (bool, bool) {
	for {
		s.println(promptWheelchair)
		answer, ok := s.readLine()
		if !ok {
			return false, false
		}

		switch strings.ToLower(answer) {
		case answerYes:
			return true, true
		case answerNo:
			return false, true
		default:
			s.println(msgInvalidYesNo)
		}
	}
}

func (h *ConsoleHandler) show(ctx context.Context, s *session) {
	s.println(h.service.SeatMap(ctx).Text)
}

func (h *ConsoleHandler) help(ctx context.Context, s *session) {
	info := h.service.TheaterInfo(ctx)

	s.println(fmt.Sprintf("Theater %s has total %d rows with %d seats for each row. The row number %s is(are) row(s) for wheelchairs",
		info.Name, info.TotalRows, info.SeatsPerRow, formatRowList(info.AccessibleRows)))
	s.println(" ")
	s.println("Command Guidance:")
	s.println(fmt.Sprintf("%s: enter '%s <numberOfSeats>' to reserve seat(s).", commandReserve, commandReserve))
	s.println(fmt.Sprintf("%s: display the current available seating in the theater, "+
		"If you want to check the actual location of the seat, please enter '%s' after receiving the confirmation message.",
		commandShow, commandShow))
	s.println(fmt.Sprintf("%s: shut down the system.", commandDone))
}

// formatRowList renders rows as "[6, 10]".
func formatRowList(rows []int) string {
	parts := make([]string, len(rows))
	for i, n := range rows {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

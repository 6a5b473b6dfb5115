package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"weather-lookup/display"
	"weather-lookup/lookup"
	"weather-lookup/models"
)

// repl reads commands and starts lookups without waiting for them, so a new search can
// replace one still in flight. Only the newest lookup's result is printed.
type repl struct {
	session *lookup.Session
	out     io.Writer
	errOut  io.Writer

	mu sync.Mutex // serializes output
	wg sync.WaitGroup
}

func newREPL(session *lookup.Session, out, errOut io.Writer) *repl {
	return &repl{session: session, out: out, errOut: errOut}
}

// run starts the command loop and returns on EOF, quit or ctx cancellation
func (r *repl) run(ctx context.Context, in io.Reader) {
	r.printf("Weather lookup (type 'help' for commands, 'quit' to exit)\n")

	lines := make(chan string)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			r.wait()
			return
		case line, ok := <-lines:
			if !ok {
				r.wait()
				r.printf("Bye!\n")
				return
			}
			if done := r.handle(ctx, strings.TrimSpace(line)); done {
				r.wait()
				return
			}
		}
	}
}

// handle dispatches a single line of input. Returns true when the user wants to quit.
func (r *repl) handle(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}

	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case "exit", "quit", "q":
		r.printf("Bye!\n")
		return true

	case "help", "h", "?":
		r.printHelp()

	case "here":
		r.start(func() (models.WeatherReport, error) {
			return r.session.ByDeviceLocation(ctx)
		})

	case "at":
		coords, err := parseCoords(parts[1:])
		if err != nil {
			r.errorf("Error: %v\n", err)
			return false
		}
		r.start(func() (models.WeatherReport, error) {
			return r.session.ByCoordinates(ctx, coords)
		})

	default:
		city := line
		if strings.EqualFold(parts[0], "city") {
			city = strings.TrimSpace(line[len(parts[0]):])
		}
		r.start(func() (models.WeatherReport, error) {
			return r.session.ByCity(ctx, city)
		})
	}
	return false
}

func (r *repl) start(fn func() (models.WeatherReport, error)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		report, err := fn()
		r.render(report, err)
	}()
}

// render prints a finished lookup; superseded results are dropped
func (r *repl) render(report models.WeatherReport, err error) {
	if errors.Is(err, lookup.ErrSuperseded) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		fmt.Fprintln(r.errOut, display.Message(err))
		return
	}
	if err := display.WriteText(r.out, display.Build(report)); err != nil {
		fmt.Fprintln(r.errOut, "Error:", err)
	}
}

func (r *repl) wait() {
	r.wg.Wait()
}

func (r *repl) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

func (r *repl) errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, format, args...)
}

func (r *repl) printHelp() {
	r.printf(`Commands:
  <city>           Show the weather for a city
  city <name>      Same, for names that clash with a command
  here             Show the weather at the device position
  at <lat> <lon>   Show the weather at a coordinate pair
  help             Show this help
  quit             Quit the program
`)
}

func parseCoords(args []string) (models.Coordinates, error) {
	if len(args) != 2 {
		return models.Coordinates{}, errors.New("usage: at <lat> <lon>")
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Coordinates{}, fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil || lon < -180 || lon > 180 {
		return models.Coordinates{}, fmt.Errorf("invalid longitude %q", args[1])
	}
	return models.Coordinates{Lat: lat, Lon: lon}, nil
}

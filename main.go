package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/planner/apperrors"
	"github.com/danielhkuo/planner/board"
	"github.com/danielhkuo/planner/calendar"
	"github.com/danielhkuo/planner/cliparse"
	"github.com/danielhkuo/planner/gateway"
	"github.com/danielhkuo/planner/ics"
	"github.com/danielhkuo/planner/links"
	"github.com/danielhkuo/planner/models"
	"github.com/danielhkuo/planner/session"
	"github.com/danielhkuo/planner/store"
	"github.com/danielhkuo/planner/wizard"
)

func main() {
	// A missing .env is fine; exported variables still apply.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("planner failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliparse.Config) error {
	ctx := context.Background()

	deviceStore, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer deviceStore.Close()

	client := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	sess := session.New(deviceStore, client)
	locale := calendar.Locale(cfg.Locale)

	trip, err := sess.Resume(ctx)
	switch apperrors.CodeOf(err) {
	case apperrors.CodeNoActiveTrip:
		if cfg.Destination == "" {
			fmt.Println("No trip is open on this device yet. Pass -destination, -start and -end to create one.")
			return nil
		}
		tripID, err := createTrip(ctx, cfg, client, sess)
		if err != nil {
			return err
		}
		trip, err = client.GetTrip(ctx, tripID)
		if err != nil {
			return err
		}
	case apperrors.CodeStaleTripHandle:
		return fmt.Errorf("the saved trip no longer resolves; open a trip again: %w", err)
	default:
		if err != nil {
			return err
		}
	}

	b := board.New(client, board.WithLocale(locale))
	if err := b.Load(ctx, trip.ID); err != nil {
		return err
	}
	groups := b.Groups()

	if cfg.ExportPath != "" {
		f, err := os.Create(cfg.ExportPath)
		if err != nil {
			return fmt.Errorf("create itinerary file: %w", err)
		}
		defer f.Close()

		if err := ics.Write(f, trip, groups); err != nil {
			return err
		}
		fmt.Printf("Itinerary written to %s\n", cfg.ExportPath)
		return nil
	}

	start := models.NewDate(trip.StartsAt)
	end := models.NewDate(trip.EndsAt)
	fmt.Println(calendar.WhenLabel(trip.Destination, start, end, locale))

	for _, group := range groups {
		fmt.Printf("\n%2d  %s\n", group.DayNumber, group.DayName)
		if len(group.Activities) == 0 {
			fmt.Println("    no activities scheduled")
			continue
		}
		for _, a := range group.Activities {
			marker := "[ ]"
			if a.Done {
				marker = "[x]"
			}
			fmt.Printf("    %s %s  %s (%s)\n", marker, a.OccursAt.Format("15:04"), a.Title, humanize.Time(a.OccursAt))
		}
	}

	lm := links.New(client)
	if err := lm.Load(ctx, trip.ID); err != nil {
		return err
	}
	if ls := lm.Links(); len(ls) > 0 {
		fmt.Println("\nlinks")
		for _, l := range ls {
			fmt.Printf("    %s  %s\n", l.Title, l.URL)
		}
	}
	if ps := lm.Participants(); len(ps) > 0 {
		fmt.Println("\nguests")
		for _, p := range ps {
			marker := "[ ]"
			if p.IsConfirmed {
				marker = "[x]"
			}
			name := p.Name
			if name == "" {
				name = "pending"
			}
			fmt.Printf("    %s %s <%s>\n", marker, name, p.Email)
		}
	}
	return nil
}

// createTrip drives the creation wizard from the command line: details from
// flags, then guests, then confirm. The created trip becomes the device's
// current trip.
func createTrip(ctx context.Context, cfg cliparse.Config, client *gateway.Client, sess *session.Session) (string, error) {
	w := wizard.New(client, sess, wizard.Owner{Name: cfg.OwnerName, Email: cfg.OwnerEmail})
	w.SetDestination(cfg.Destination)

	for _, input := range []string{cfg.StartDate, cfg.EndDate} {
		day, err := models.ParseDate(input)
		if err != nil {
			return "", fmt.Errorf("parse trip date %q: %w", input, err)
		}
		w.SelectDay(day)
	}
	if err := w.Next(); err != nil {
		return "", err
	}

	for _, email := range strings.Split(cfg.Invites, ",") {
		if strings.TrimSpace(email) == "" {
			continue
		}
		if err := w.Guests().Add(email); err != nil {
			return "", err
		}
	}

	return w.Confirm(ctx)
}

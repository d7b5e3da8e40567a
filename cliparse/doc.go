// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - APIBaseURL: Planner API base URL (default: http://localhost:3333)
  - DatabasePath: Device store sqlite file (default: planner.db)
  - OwnerName / OwnerEmail: identity sent with trip creation
  - Locale: display locale, pt-BR or en (default: pt-BR)
  - HTTPTimeout: API request timeout (default: 15s)
  - ExportPath: when set, write the itinerary as iCalendar and exit
  - Destination / StartDate / EndDate / Invites: inputs for creating a
    trip when no trip is open on the device (flag-only)

# CLI Flags

	-api          Planner API base URL
	-db           Device store file path
	-owner-name   Trip owner name
	-owner-email  Trip owner email
	-locale       Display locale
	-timeout      API request timeout
	-export       Itinerary output path
	-destination  Destination for a new trip
	-start        New trip start date (YYYY-MM-DD)
	-end          New trip end date (YYYY-MM-DD)
	-invites      Comma-separated guest emails for a new trip

# Environment Variables

The environment is read first (via caarlos0/env struct tags), then flags
override it:

	PLANNER_API_URL      → -api
	PLANNER_DB           → -db
	PLANNER_OWNER_NAME   → -owner-name
	PLANNER_OWNER_EMAIL  → -owner-email
	PLANNER_LOCALE       → -locale
	PLANNER_HTTP_TIMEOUT → -timeout

main loads a local .env file (godotenv) before parsing, so a project-level
.env works the same as exported variables.
*/
package cliparse

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	HTTPPort           string
	ShipStationKey     string
	ShipStationSecret  string
	ShipStationBaseURL string
	StoreIDs           []int64
	SplitStoreIDs      []int64
	PolicyPath         string
	Schedule           string
	SplitSchedule      string
	LogLevel           slog.Level
	DryRun             bool
	HTTPTimeout        time.Duration
	RetryMaxTries      uint
}

// LoadDotEnv loads path into the environment. A missing file is not an error;
// variables already set win over the file.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadConfig builds a Config from lookup, usually os.LookupEnv.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		HTTPPort:           get("HTTP_PORT", "8080"),
		ShipStationKey:     get("SHIPSTATION_V1_KEY", get("SHIPSTATION_API_KEY", "")),
		ShipStationSecret:  get("SHIPSTATION_V1_SECRET", get("SHIPSTATION_API_SECRET", "")),
		ShipStationBaseURL: get("SHIPSTATION_BASE_URL", "https://ssapi.shipstation.com"),
		PolicyPath:         get("POLICY_PATH", ""),
		Schedule:           get("SCHEDULE", "@every 15m"),
		SplitSchedule:      get("SPLIT_SCHEDULE", ""),
	}

	var errList []error
	var err error
	if cfg.StoreIDs, err = parseIDs(get("STORE_IDS", "427096")); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("STORE_IDS", err))
	}
	if cfg.SplitStoreIDs, err = parseIDs(get("SPLIT_STORE_IDS", "427093,427096")); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("SPLIT_STORE_IDS", err))
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
	}
	if cfg.DryRun, err = strconv.ParseBool(get("DRY_RUN", "false")); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("DRY_RUN", err))
	}
	if cfg.HTTPTimeout, err = time.ParseDuration(get("HTTP_TIMEOUT", "30s")); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("HTTP_TIMEOUT", err))
	}
	tries, err := strconv.ParseUint(get("RETRY_MAX_TRIES", "4"), 10, 32)
	if err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("RETRY_MAX_TRIES", err))
	}
	cfg.RetryMaxTries = uint(tries)

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks what every platform-facing command needs.
func (c Config) Validate() error {
	var errList []error
	if c.ShipStationKey == "" {
		errList = append(errList, errs.NewValueIsRequiredError("SHIPSTATION_V1_KEY"))
	}
	if c.ShipStationSecret == "" {
		errList = append(errList, errs.NewValueIsRequiredError("SHIPSTATION_V1_SECRET"))
	}
	if len(c.StoreIDs) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("STORE_IDS"))
	}
	return errors.Join(errList...)
}

// NewLogger returns the JSON logger every component derives from.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		if id <= 0 {
			return nil, fmt.Errorf("%d is not greater than 0", id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

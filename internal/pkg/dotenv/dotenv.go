package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает .env (если он есть) и применяет флаги командной строки
// поверх переменных окружения. Уже выставленные переменные не перетираются.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}

	var portFlag, changeFeedFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&changeFeedFlag, "change-feed", "", "Change feed: postgres|kafka (overrides LIVEQUERY_CHANGE_FEED)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":                  portFlag,
		"LIVEQUERY_CHANGE_FEED": changeFeedFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}

package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает файл окружения, если он существует, и применяет флаг -port.
// Уже заданные переменные окружения файлом не перезаписываются.
// Возвращает false, если файла нет.
func Load(filename string) (bool, error) {
	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	loaded := true
	err := godotenv.Load(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("load %s: %w", filename, err)
		}
		loaded = false
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}

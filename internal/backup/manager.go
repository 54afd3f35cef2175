package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/lumiere-salon/salon-scheduler/internal/objstore"
)

const retentionDays = 30

// Manager copia o arquivo do banco para o diretório de backups, com
// varredura de retenção e cópia externa opcional para S3. Só faz
// sentido com o banco em arquivo (SQLite); com Postgres o snapshot é
// responsabilidade da infraestrutura.
type Manager struct {
	dbPath   string
	dir      string
	uploader *objstore.Uploader
}

type Info struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
}

func NewManager(dbPath, dir string, uploader *objstore.Uploader) *Manager {
	return &Manager{
		dbPath:   dbPath,
		dir:      dir,
		uploader: uploader,
	}
}

func (m *Manager) Create(ctx context.Context) (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", errors.New("backup disponível apenas para banco em arquivo (SQLite)")
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", err
	}

	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	name := fmt.Sprintf("salon-backup-%s-%s.db", stamp, uuid.NewString()[:8])
	dst := filepath.Join(m.dir, name)

	if err := copyFile(m.dbPath, dst); err != nil {
		return "", err
	}
	log.Println("Backup created:", name)

	if m.uploader != nil {
		go func() {
			if _, err := m.uploadSnapshot(dst, name); err != nil {
				log.Println("offsite backup upload failed:", err)
			}
		}()
	}

	return dst, nil
}

func (m *Manager) uploadSnapshot(path, name string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return m.uploader.Upload(ctx, "backups/"+name, f, "application/octet-stream")
}

func (m *Manager) List() ([]Info, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, err
	}

	backups := make([]Info, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".db" {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Name:    e.Name(),
			Path:    filepath.Join(m.dir, e.Name()),
			Size:    fi.Size(),
			Created: fi.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})

	return backups, nil
}

func (m *Manager) CleanOld() {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		log.Println("error reading backup directory:", err)
		return
	}

	maxAge := retentionDays * 24 * time.Hour
	now := time.Now()

	for _, e := range entries {
		fi, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(fi.ModTime()) > maxAge {
			if err := os.Remove(filepath.Join(m.dir, e.Name())); err != nil {
				log.Println("error deleting old backup:", err)
			} else {
				log.Println("Deleted old backup:", e.Name())
			}
		}
	}
}

// Schedule agenda o backup diário às 03:00 e devolve o cron para o
// chamador poder parar.
func (m *Manager) Schedule() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		log.Println("Running scheduled backup...")
		if _, err := m.Create(context.Background()); err != nil {
			log.Println("scheduled backup failed:", err)
			return
		}
		m.CleanOld()
	})

	c.Start()
	log.Println("Automatic backup scheduled: daily at 3:00 AM")
	return c
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/odurisile/DNA-Insight/models"
	"github.com/odurisile/DNA-Insight/models/ingest"
	"github.com/odurisile/DNA-Insight/services/ingestion"

	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

type (
	IngestionService struct {
		Initialized         bool
		UploadRequestMap    map[string]*ingest.UploadRequest
		UploadRequestMapMux sync.RWMutex
		UploadPath          string
		MaxUploadBytes      int64

		// request ids, oldest first
		order []string
	}
)

func NewIngestionService(cfg *models.Config) *IngestionService {
	iz := &IngestionService{
		Initialized:         false,
		UploadRequestMap:    map[string]*ingest.UploadRequest{},
		UploadRequestMapMux: sync.RWMutex{},
		UploadPath:          cfg.Api.UploadPath,
		MaxUploadBytes:      cfg.Api.MaxUploadBytes,
	}

	iz.Init()

	return iz
}

func (i *IngestionService) Init() {
	// safeguard to prevent multiple initilizations
	if !i.Initialized {
		if i.UploadPath != "" {
			if err := os.MkdirAll(i.UploadPath, 0755); err != nil {
				fmt.Printf("[%s] - Cannot create upload directory %s: %s -- uploads will not be kept\n", time.Now(), i.UploadPath, err)
				i.UploadPath = ""
			}
		}
		i.Initialized = true
	}
}

// Ingest reads one uploaded file, keeps a copy when an upload directory is
// configured, and parses it. Every call is tracked as an UploadRequest.
func (i *IngestionService) Ingest(filename string, r io.Reader) (*ingestion.Result, *ingest.UploadRequest, error) {
	req := &ingest.UploadRequest{
		Id:        uuid.New(),
		Filename:  filename,
		State:     ingest.Queued,
		CreatedAt: now(),
	}
	i.track(req)
	fmt.Printf("[%s] - Queueing a new upload request for %s\n", time.Now(), filename)

	data, err := i.readLimited(r)
	if err != nil {
		return nil, i.fail(req, err), err
	}

	req.State = ingest.Running
	i.track(req)

	if i.UploadPath != "" {
		dest := path.Join(i.UploadPath, req.Id.String()+filepath.Ext(filename))
		if err := os.WriteFile(dest, data, 0644); err != nil {
			// keeping a copy is best effort
			fmt.Printf("[%s] - Could not persist %s to %s: %s\n", time.Now(), filename, dest, err)
		}
	}

	res, err := ingestion.ParseFile(filename, data)
	if err != nil {
		return nil, i.fail(req, err), err
	}

	req.State = ingest.Done
	req.Vendor = res.Vendor
	req.Tier = res.Tier
	req.Calls = len(res.Genome)
	req.Message = fmt.Sprintf("parsed %d calls (%d rows skipped)", len(res.Genome), res.Stats.Skipped)
	i.track(req)

	return res, req, nil
}

func (i *IngestionService) readLimited(r io.Reader) ([]byte, error) {
	if i.MaxUploadBytes <= 0 {
		return io.ReadAll(r)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, i.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if n > i.MaxUploadBytes {
		return nil, ingestion.ErrUploadTooLarge
	}
	return buf.Bytes(), nil
}

func (i *IngestionService) fail(req *ingest.UploadRequest, err error) *ingest.UploadRequest {
	req.State = ingest.Error
	req.Message = err.Error()
	i.track(req)
	fmt.Printf("[%s] - Upload %s failed: %s\n", time.Now(), req.Filename, err)
	return req
}

func (i *IngestionService) track(req *ingest.UploadRequest) {
	req.UpdatedAt = now()

	i.UploadRequestMapMux.Lock()
	defer i.UploadRequestMapMux.Unlock()

	id := req.Id.String()
	if _, ok := i.UploadRequestMap[id]; !ok {
		i.order = append(i.order, id)
	}
	copied := *req
	i.UploadRequestMap[id] = &copied
}

// GetAllRequests returns copies of every tracked request, newest first.
func (i *IngestionService) GetAllRequests() []ingest.UploadRequest {
	i.UploadRequestMapMux.RLock()
	defer i.UploadRequestMapMux.RUnlock()

	out := make([]ingest.UploadRequest, 0, len(i.order))
	for k := len(i.order) - 1; k >= 0; k-- {
		out = append(out, *i.UploadRequestMap[i.order[k]])
	}
	return out
}

func now() string {
	return time.Now().UTC().Format(timestampLayout)
}

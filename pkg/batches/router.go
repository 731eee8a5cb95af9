// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package batches exposes batch file generation over HTTP: a client
// uploads a payment instruction CSV with the batch-level parameters and
// downloads the built file.
package batches

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jedbites/bacs-file-automation/pkg/bacs"
	"github.com/jedbites/bacs-file-automation/pkg/config"
	"github.com/jedbites/bacs-file-automation/pkg/dataset"
	"github.com/jedbites/bacs-file-automation/x/route"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/prometheus"
	"github.com/gorilla/mux"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// maxUploadSize bounds an uploaded dataset. Expected batches are low
// thousands of rows, far under this.
const maxUploadSize = 10 << 20 // 10MB

var (
	filesCreated = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "bacs_files_created",
		Help: "Counter of BACS batch files created",
	}, []string{})

	amountsZeroed = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "bacs_amounts_zeroed",
		Help: "Counter of payment rows whose unparsable amounts were zeroed",
	}, []string{})
)

type Router struct {
	logger log.Logger
	cfg    *config.Config

	GenerateBatchFile http.HandlerFunc
	PreviewDataset    http.HandlerFunc
}

func NewRouter(logger log.Logger, cfg *config.Config) *Router {
	return &Router{
		logger:            logger,
		cfg:               cfg,
		GenerateBatchFile: generateBatchFile(logger, cfg),
		PreviewDataset:    previewDataset(logger),
	}
}

func (c *Router) RegisterRoutes(r *mux.Router) {
	r.Methods("POST").Path("/batches/generate").HandlerFunc(c.GenerateBatchFile)
	r.Methods("POST").Path("/batches/preview").HandlerFunc(c.PreviewDataset)
}

// generateBatchFile builds the batch file from the uploaded dataset and
// responds with it as a CSV attachment.
func generateBatchFile(logger log.Logger, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)
		if responder == nil {
			return
		}

		ds, err := readUpload(r)
		if err != nil {
			responder.Problem(err)
			return
		}
		if err := bacs.ValidateColumns(ds.Columns); err != nil {
			responder.Problem(err)
			return
		}

		params := readBatchParams(r)
		file, err := bacs.BuildFile(params, ds.PaymentRows(), time.Now(), cfg.Bacs.Options())
		if err != nil {
			responder.Problem(err)
			return
		}
		for i := range file.Skipped {
			amountsZeroed.Add(1)
			responder.Log("batches", fmt.Sprintf("zeroed unparsable amount %q on row %d of batch %s",
				file.Skipped[i].Amount, file.Skipped[i].Row, params.BatchID))
		}

		filename, err := config.RenderFilename(cfg.Bacs.Filename(), config.FilenameData{BatchID: params.BatchID})
		if err != nil {
			responder.Problem(err)
			return
		}

		bs, err := file.Bytes()
		if err != nil {
			responder.Problem(err)
			return
		}

		filesCreated.Add(1)
		responder.Log("batches", fmt.Sprintf("built batch %s with %d records", params.BatchID, len(file.Records)))

		responder.Respond(func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			w.WriteHeader(http.StatusOK)
			w.Write(bs)
		})
	}
}

type previewResponse struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

// previewDataset echoes the parsed upload back as JSON so a client can
// inspect what was read before generating a file.
func previewDataset(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)
		if responder == nil {
			return
		}

		ds, err := readUpload(r)
		if err != nil {
			responder.Problem(err)
			return
		}

		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(previewResponse{
				Headers: ds.Columns,
				Rows:    ds.Rows,
			})
		})
	}
}

func readUpload(r *http.Request) (*dataset.Dataset, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, fmt.Errorf("parsing upload: %v", err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file part: %v", err)
	}
	defer f.Close()

	ds, err := dataset.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset: %v", err)
	}
	return ds, nil
}

func readBatchParams(r *http.Request) bacs.BatchParams {
	return bacs.BatchParams{
		DebtorName:     r.FormValue("debtorName"),
		DebtorAccount:  r.FormValue("debtorAccount"),
		BatchID:        r.FormValue("batchID"),
		ContraSortCode: r.FormValue("contraSortCode"),
	}
}

package apihandlers

import (
	"log/slog"
	"net/http"
	"sync"

	calc "github.com/Kiarash-sabbaghii-giit/calculator"
	"github.com/gin-gonic/gin"
)

type EvaluateReq struct {
	Expression string `json:"expression"`
}

type EvaluateResp struct {
	Result float64 `json:"result"`
}

func (h *HttpEndpoints) evaluate(c *gin.Context) {
	var req EvaluateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Error binding request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := calc.Evaluate(req.Expression)
	if err != nil {
		slog.Error("Evaluation failed", slog.String("input", req.Expression), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, EvaluateResp{Result: r})
}

type EvaluateBatchReq struct {
	Expressions []string `json:"expressions"`
}

type BatchItem struct {
	Result float64 `json:"result"`
	Error  string  `json:"error,omitempty"`
}

type EvaluateBatchResp struct {
	Items []BatchItem `json:"items"`
}

// evaluateBatch evaluates all expressions of a request in parallel. Items
// keep the order of the request; a failed expression carries its error
// instead of failing the whole batch.
func (h *HttpEndpoints) evaluateBatch(c *gin.Context) {
	var req EvaluateBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Error binding request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Expressions) > h.maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many expressions in batch"})
		return
	}

	items := make([]BatchItem, len(req.Expressions))

	workers := h.batchWorkers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int, len(req.Expressions))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := calc.Evaluate(req.Expressions[i])
				if err != nil {
					slog.Error("Evaluation failed", slog.String("input", req.Expressions[i]), slog.String("error", err.Error()))
					items[i] = BatchItem{Error: err.Error()}
					continue
				}
				items[i] = BatchItem{Result: r}
			}
		}()
	}

	for i := range req.Expressions {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	c.JSON(http.StatusOK, EvaluateBatchResp{Items: items})
}

package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmwatch/blockfilter/config"
	"github.com/evmwatch/blockfilter/filter"
	"github.com/evmwatch/blockfilter/model"
)

type FilterController struct{}

func (fc *FilterController) Routers(routers gin.IRouter) {
	api := routers.Group("/filter")
	{
		api.POST("/evaluate", fc.Evaluate)
	}
}

// Evaluate runs the block parity filter against the monitor match document in
// the request body. Failed evaluations keep data.decision false so consumers
// that never look at the code still read a usable decision.
func (fc *FilterController) Evaluate(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusOK, model.Message{Code: http.StatusBadRequest, Msg: fmt.Sprintf("read request body is err: %v", err), Data: model.Verdict{}})
		return
	}

	input, err := filter.DecodeInput(body)
	if err != nil {
		c.JSON(http.StatusOK, model.Message{Code: http.StatusBadRequest, Msg: err.Error(), Data: model.Verdict{}})
		return
	}

	verdict, err := filter.NewEvaluator(config.Conf.Filter.Verbose).Evaluate(input)
	if err != nil {
		c.JSON(http.StatusOK, model.Message{Code: http.StatusBadRequest, Msg: err.Error(), Data: verdict})
		return
	}

	c.JSON(http.StatusOK, model.Message{Code: http.StatusOK, Data: verdict})
}

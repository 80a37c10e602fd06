package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizhub/internal/container"
	"github.com/saulo-duarte/quizhub/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func lambdaHandler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		CategoryHandler: c.CategoryContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		HistoryHandler:  c.HistoryContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(r)
		lambda.Start(lambdaHandler)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}

	logrus.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}

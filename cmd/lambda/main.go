package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	_ "github.com/saulo-duarte/quizgen/docs"
	"github.com/saulo-duarte/quizgen/internal/container"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	c := container.New()
	chiLambda = chiadapter.New(c.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}

package config

import (
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMGetParametersByPathPaginatorAPI simplifies retrieval of pages of parameters.
type SSMGetParametersByPathPaginatorAPI interface {
	HasMorePages() bool
	NextPage(ctx context.Context, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// SSMNewGetParametersByPathPaginatorAPI allows creating new paginators for GetParametersByPath operations.
type SSMNewGetParametersByPathPaginatorAPI func(
	client ssm.GetParametersByPathAPIClient, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.GetParametersByPathPaginatorOptions),
) SSMGetParametersByPathPaginatorAPI

// NewSSMPaginator wraps ssm.NewGetParametersByPathPaginator to satisfy SSMNewGetParametersByPathPaginatorAPI.
func NewSSMPaginator(
	client ssm.GetParametersByPathAPIClient, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.GetParametersByPathPaginatorOptions),
) SSMGetParametersByPathPaginatorAPI {
	return ssm.NewGetParametersByPathPaginator(client, params, optFns...)
}

// ParametersFromSSM reads every parameter directly under prefix and returns
// them keyed by the last segment of their name, so "/contact/RECEIVER_EMAIL"
// becomes "RECEIVER_EMAIL". SecureString values are decrypted.
func ParametersFromSSM(
	ctx context.Context,
	client ssm.GetParametersByPathAPIClient,
	newPaginator SSMNewGetParametersByPathPaginatorAPI,
	prefix string,
) (map[string]string, error) {
	p := newPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
	})

	params := map[string]string{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting page of parameters under %s: %w", prefix, err)
		}

		for _, param := range out.Parameters {
			if param.Name == nil || param.Value == nil {
				continue
			}
			params[path.Base(*param.Name)] = *param.Value
		}
	}

	return params, nil
}

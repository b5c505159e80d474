/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package config

import (
	"bytes"
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

const (
	defaultPort           = 3000
	defaultMaxRequestSize = 10485760
	defaultRegion         = "us-east-1"
)

type AppConfig struct {
	Aws        AWS
	S3         S3       `yaml:"s3" mapstructure:"s3"`
	DynamoDB   DynamoDB `yaml:"dynamodb" mapstructure:"dynamodb"`
	HTTPServer HTTPServer
	Datadog    Datadog
	Log        Log
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Metrics           bool
	MaxRequestSize    int
	Port              int
}

// AWS settings shared by every client the factory builds. Resolver overrides
// the service endpoint (localstack); static keys are only meant for local runs,
// otherwise the default credential chain of the host is used.
type AWS struct {
	Queue           string
	Region          string
	Resolver        string
	AccessKeyID     string
	SecretAccessKey string
}

// S3 and DynamoDB hold resource names provisioned next to the function.
// They are read and logged, nothing consumes them yet.
type S3 struct {
	BucketName string `yaml:"bucket_name" mapstructure:"bucket_name"`
}

type DynamoDB struct {
	TableName string `yaml:"table_name" mapstructure:"table_name"`
}

type Datadog struct {
	Profiler bool
}

type Log struct {
	Debug bool
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Aws: AWS{
			Region: defaultRegion,
		},
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
		},
	}
}

func validateConfig(config AppConfig) error {
	if config.Aws.Region == "" {
		return fmt.Errorf("no AWS region specified")
	}

	if (config.Aws.AccessKeyID == "") != (config.Aws.SecretAccessKey == "") {
		return fmt.Errorf("AWS access key id and secret access key must be set together")
	}

	return nil
}

// LoadConfig merges defaults, an optional config.yaml and the environment.
// A missing config file is not an error: inside Lambda everything comes from
// the environment.
// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig(fs afero.Fs) (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetFs(fs)

	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("/app/config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(bytes.NewReader(b)); err != nil {
		return AppConfig{}, err
	}

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, errors.Wrap(err, "failed to read config file")
		}
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))

	config := AppConfig{}
	if err := v.Unmarshal(&config); err != nil {
		return AppConfig{}, err
	}

	if err := validateConfig(config); err != nil {
		return AppConfig{}, err
	}

	return config, nil
}

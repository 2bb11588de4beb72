// Package common holds helpers shared by handler tests.
package common

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"runtime"

	"github.com/odurisile/DNA-Insight/models"

	yaml "gopkg.in/yaml.v2"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// Upload is one multipart file part.
type Upload struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartBody encodes files and plain fields as multipart/form-data and
// returns the body with its content type.
func MultipartBody(files []Upload, fields map[string]string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for name, value := range fields {
		_ = w.WriteField(name, value)
	}
	for _, u := range files {
		part, err := w.CreateFormFile(u.Field, u.Filename)
		if err != nil {
			processError(err)
		}
		_, _ = part.Write(u.Content)
	}
	_ = w.Close()

	return body, w.FormDataContentType()
}

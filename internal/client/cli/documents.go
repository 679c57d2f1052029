package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/guptaRishi00/waflow/internal/client/panels"
)

// UploadDocument checks the upload gate locally before sending; the server
// enforces the same rule again.
func (a *App) UploadDocument(ctx context.Context) error {
	appID, err := GetSimpleText(a.reader, "Application ID", os.Stdout)
	if err != nil {
		return err
	}
	stepID, err := GetSimpleText(a.reader, "Step ID", os.Stdout)
	if err != nil {
		return err
	}

	docs, err := a.api.DocumentsByApplication(ctx, appID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if !panels.CanUpload(docs, stepID) {
		log.Println("This step already has a document uploaded or in review")
		return nil
	}

	path, err := GetSimpleText(a.reader, "File path", os.Stdout)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	defer file.Close()

	doc, err := a.api.UploadDocument(ctx, appID, stepID, "", filepath.Base(path), file)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Uploaded:", doc.ID, doc.Status)
	return nil
}

func (a *App) ListDocuments(ctx context.Context) error {
	appID, err := GetSimpleText(a.reader, "Application ID", os.Stdout)
	if err != nil {
		return err
	}

	docs, err := a.api.DocumentsByApplication(ctx, appID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, d := range docs {
		printlnFn(fmt.Sprintf("%s  %-30s %-12s step=%s", d.ID, d.Name, d.Status, d.StepID))
	}
	return nil
}

// ReviewDocument approves or rejects a document. Agents only.
func (a *App) ReviewDocument(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Document ID", os.Stdout)
	if err != nil {
		return err
	}
	status, err := GetSimpleText(a.reader, "Status (Approved/Rejected)", os.Stdout)
	if err != nil {
		return err
	}

	doc, err := a.api.ReviewDocument(ctx, id, status)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Document", doc.ID, "is now", doc.Status)
	return nil
}

func (a *App) DownloadDocument(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Document ID", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.api.DocumentDownloadURL(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Download URL:", url)
	return nil
}

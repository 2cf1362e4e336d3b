// CI функции для vaiz.go: тесты, генерация справочника ошибок, сборка и публикация образа MCP сервера.
//
// Функции вызываются через dagger CLI, например:
//
//	dagger call test --source=.
//	dagger call build-app --version=v0.3.0 --source=. --registry-secret=env:TOKEN --registry-user=ci --image-name=aisa-it/vaiz-mcp
package main

import (
	"context"
	"dagger/vaiz/internal/dagger"
	"fmt"
)

const versionVar = "github.com/aisa-it/vaiz.go/pkg/vaiz.version"

type Vaiz struct{}

func (m *Vaiz) GoBuildEnv(source *dagger.Directory) *dagger.Container {
	goCache := dag.CacheVolume("go")
	return dag.Container().
		From("golang:alpine").
		WithDirectory("/src", source, dagger.ContainerWithDirectoryOpts{Exclude: []string{"_examples/", "dagger-ci/"}}).
		WithWorkdir("/src").
		WithEnvVariable("GOOS", "linux").
		WithEnvVariable("CGO_ENABLED", "0").
		WithMountedCache("/go/pkg/mod", goCache).
		WithExec([]string{"go", "mod", "download"})
}

// Test запускает go vet и тесты всех пакетов
func (m *Vaiz) Test(ctx context.Context, source *dagger.Directory) (string, error) {
	return m.GoBuildEnv(source).
		WithExec([]string{"go", "vet", "./..."}).
		WithExec([]string{"go", "test", "-count=1", "./..."}).
		Stdout(ctx)
}

// ErrorsDocs справочник кодов ошибок, собранный cmd/docsgen
func (m *Vaiz) ErrorsDocs(source *dagger.Directory) *dagger.File {
	return m.GoBuildEnv(source).
		WithExec([]string{"go", "run", "./cmd/docsgen", "-src", "pkg/apierrors/apierrors.go", "-out", "/build/api_errors.md"}).
		File("/build/api_errors.md")
}

func (m *Vaiz) RuntimeEnv(platform dagger.Platform, appBin *dagger.File) *dagger.Container {
	return dag.Container(dagger.ContainerOpts{
		Platform: platform,
	}).
		From("alpine").
		WithExec([]string{"apk", "add", "--no-cache", "ca-certificates", "tzdata"}).
		WithWorkdir("/app").
		WithFile("/app/vaiz-mcp", appBin).
		WithEnvVariable("MCP_HTTP_ADDR", ":8080").
		WithExposedPort(8080).
		WithExposedPort(2112).
		WithEntrypoint([]string{"/app/vaiz-mcp"})
}

func (m *Vaiz) Build(version string, source *dagger.Directory) []*dagger.Container {
	buildMatrix := []struct {
		Arch     string
		BinName  string
		Platform dagger.Platform
	}{
		{
			Arch:     "amd64",
			BinName:  "/build/vaiz-mcp-linux",
			Platform: dagger.Platform("linux/amd64"),
		},
		{
			Arch:     "arm64",
			BinName:  "/build/vaiz-mcp-linux-arm64",
			Platform: dagger.Platform("linux/arm64/v8"),
		},
	}

	var images []*dagger.Container
	for _, buildParam := range buildMatrix {
		builder := m.GoBuildEnv(source).
			WithEnvVariable("GOARCH", buildParam.Arch).
			WithExec([]string{"go", "build", "-o", buildParam.BinName, "-ldflags", fmt.Sprintf("-s -w -X %s=%s", versionVar, version), "./cmd/vaiz-mcp"})

		image := m.RuntimeEnv(buildParam.Platform, builder.File(buildParam.BinName)).
			WithLabel("org.opencontainers.image.source", "https://github.com/aisa-it/vaiz.go").
			WithAnnotation("org.opencontainers.image.source", "https://github.com/aisa-it/vaiz.go")
		images = append(images, image)
	}
	return images
}

func (m *Vaiz) Publish(
	ctx context.Context,
	images []*dagger.Container,
	registrySecret *dagger.Secret,
	registryUser string,
	imageName string,
) (string, error) {
	return dag.Container().
		WithRegistryAuth("ghcr.io", registryUser, registrySecret).
		Publish(ctx, "ghcr.io/"+imageName, dagger.ContainerPublishOpts{PlatformVariants: images})
}

func (m *Vaiz) Export(ctx context.Context, images []*dagger.Container, imageName string) (string, error) {
	return dag.Container().
		Export(ctx, imageName, dagger.ContainerExportOpts{PlatformVariants: images})
}

func (m *Vaiz) BuildLocal(ctx context.Context, name string, source *dagger.Directory) (string, error) {
	return m.Export(ctx, m.Build("v0.1.0", source), name)
}

// BuildApp прогоняет тесты и публикует образ с тегами версии и latest
func (m *Vaiz) BuildApp(ctx context.Context, version string, source *dagger.Directory,
	registrySecret *dagger.Secret,
	registryUser string,
	imageName string,
) error {
	if _, err := m.Test(ctx, source); err != nil {
		return err
	}
	images := m.Build(version, source)

	for _, tag := range []string{version, "latest"} {
		ref, err := m.Publish(ctx, images, registrySecret, registryUser, fmt.Sprintf("%s:%s", imageName, tag))
		if err != nil {
			return err
		}
		fmt.Println(ref)
	}
	return nil
}

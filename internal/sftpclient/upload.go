package sftpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type Config struct {
	Host                  string `validate:"required,hostname|ip"`
	Port                  int    `validate:"gte=0,lte=65535"`
	User                  string `validate:"required"`
	Pass                  string `validate:"required"`
	RemoteDir             string
	InsecureIgnoreHostKey bool
	KnownHostsPath        string `validate:"required_if=InsecureIgnoreHostKey false"`
}

var ErrMissingCredentials = errors.New("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate applies defaults (port 22, remote dir "/") and checks cfg.
func (cfg *Config) Validate() error {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return ErrMissingCredentials
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("sftp: invalid config: %w", err)
	}
	return nil
}

func hostKeyCallback(cfg Config) (ssh.HostKeyCallback, error) {
	if cfg.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	cb, err := knownhosts.New(cfg.KnownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("sftp: load known_hosts: %w", err)
	}
	return cb, nil
}

// UploadFile copies localPath to RemoteDir/remoteFileName on the server.
func UploadFile(ctx context.Context, cfg Config, localPath string, remoteFileName string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	return Upload(ctx, cfg, src, remoteFileName)
}

// Upload streams r to RemoteDir/remoteFileName.
func Upload(ctx context.Context, cfg Config, r io.Reader, remoteFileName string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cb, err := hostKeyCallback(cfg)
	if err != nil {
		return err
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         20 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sftp: dial canceled: %w", err)
	}

	// ssh.Dial has no ctx variant
	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	var sshClient *ssh.Client
	select {
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.client != nil {
				r.client.Close()
			}
		}()
		return fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("sftp: dial error: %w", r.err)
		}
		sshClient = r.client
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	if err := sftpCli.MkdirAll(cfg.RemoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", cfg.RemoteDir, err)
	}

	remotePath := path.Join(cfg.RemoteDir, remoteFileName)
	dst, err := sftpCli.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("sftp: upload copy: %w", err)
	}

	return nil
}

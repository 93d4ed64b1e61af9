// Package client holds the minimal client record orders reference.
// Full client registry management lives outside this service.
package client

import (
	"errors"
	"strings"

	"github.com/kleberrossi/Procman/internal/core/domain/model/kernel"
	"github.com/kleberrossi/Procman/internal/pkg/errs"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

type Client struct {
	id           kernel.UUID
	legalName    string
	cnpj         string
	internalCode string

	isConstructed bool
}

func NewClient(id kernel.UUID, legalName, cnpj, internalCode string) (*Client, error) {
	c := &Client{
		internalCode:  strings.TrimSpace(internalCode),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setLegalName(legalName),
		c.setCNPJ(cnpj),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) LegalName() string {
	return c.legalName
}

func (c *Client) CNPJ() string {
	return c.cnpj
}

func (c *Client) InternalCode() string {
	return c.internalCode
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setLegalName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("razao_social")
	}
	c.legalName = name
	return nil
}

func (c *Client) setCNPJ(cnpj string) error {
	cnpj = strings.TrimSpace(cnpj)
	if cnpj == "" {
		return errs.NewValueIsRequiredError("cnpj")
	}
	c.cnpj = cnpj
	return nil
}

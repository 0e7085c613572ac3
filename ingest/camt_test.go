package ingest

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redflag/analysis"
)

const camtStatement = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <GrpHdr><MsgId>STMT-2024-12</MsgId></GrpHdr>
    <Stmt>
      <Id>1</Id>
      <Ntry>
        <Amt Ccy="USD">75000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Sts>BOOK</Sts>
        <BookgDt><Dt>2024-12-20</Dt></BookgDt>
        <NtryDtls><TxDtls><RmtInf><Ustrd>Invoice 1001</Ustrd><Ustrd>Big Box Retail</Ustrd></RmtInf></TxDtls></NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="USD">3000.00</Amt>
        <CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><DtTm>2024-12-21T09:15:00</DtTm></BookgDt>
        <AddtlNtryInf>Office rent</AddtlNtryInf>
      </Ntry>
      <Ntry>
        <Amt Ccy="USD">10.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <RvslInd>true</RvslInd>
        <BookgDt><Dt>2024-12-22</Dt></BookgDt>
      </Ntry>
      <Ntry>
        <Amt Ccy="USD">10.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestParseCAMT053(t *testing.T) {
	t.Run("statement entries", func(t *testing.T) {
		result, err := ParseCAMT053(strings.NewReader(camtStatement))
		require.NoError(t, err)

		require.Len(t, result.Transactions, 2)
		assert.Equal(t, 2, result.Skipped)

		deposit := result.Transactions[0]
		assert.Equal(t, "2024-12-20", deposit.Date)
		assert.Equal(t, analysis.TransactionDeposit, deposit.Type)
		assert.True(t, deposit.Amount.Equal(decimal.NewFromInt(75000)))
		assert.Equal(t, "Invoice 1001 Big Box Retail", deposit.Description)

		rent := result.Transactions[1]
		assert.Equal(t, "2024-12-21", rent.Date)
		assert.Equal(t, analysis.TransactionWithdrawal, rent.Type)
		assert.Equal(t, "Office rent", rent.Description)
	})

	t.Run("not xml", func(t *testing.T) {
		_, err := ParseCAMT053(strings.NewReader("date,amount\n"))
		assert.Error(t, err)
	})

	t.Run("other xml document", func(t *testing.T) {
		_, err := ParseCAMT053(strings.NewReader(`<Document><Other/></Document>`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "camt.053")
	})
}

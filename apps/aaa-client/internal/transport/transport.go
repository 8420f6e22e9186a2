// Package transport はRADIUSパケットのソケット送受信を提供する。
// 受信はノンブロッキングで1データグラムずつ行い、待機はWaitReadableで
// ランタイムのネットポーラーに委ねる。
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"syscall"
	"time"

	"github.com/oyaguma3/pppoe-aaa-client/apps/aaa-client/internal/radius"
	"github.com/oyaguma3/pppoe-aaa-client/pkg/logging"
	"golang.org/x/sys/unix"
)

// Transport はCodecを用いてパケットを送受信する
type Transport struct {
	codec *radius.Codec
}

// New は新しいTransportを生成する
func New(codec *radius.Codec) *Transport {
	return &Transport{codec: codec}
}

// Send はBuild済みのパケットを送信する。
// addrがnilなら接続済みソケットへWrite、非nilならWriteToで送る。
// シグナル割り込み（EINTR）は即座に再試行し、それ以外の失敗はパケットを保持したまま返す。
func (t *Transport) Send(conn net.Conn, p *radius.Packet, addr net.Addr) error {
	wire := p.Wire()
	if wire == nil {
		return radius.ErrNotBuilt
	}

	var pc net.PacketConn
	if addr != nil {
		var ok bool
		if pc, ok = conn.(net.PacketConn); !ok {
			return fmt.Errorf("%w: %T cannot send to %s", ErrUnsupportedConn, conn, addr)
		}
	}

	for {
		var n int
		var err error
		if pc != nil {
			n, err = pc.WriteTo(wire, addr)
		} else {
			n, err = conn.Write(wire)
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			if errors.Is(err, unix.ECONNREFUSED) {
				err = fmt.Errorf("%w: %w", ErrConnRefused, err)
			}
			slog.Error("RADIUSパケット送信失敗",
				logging.WithEventID("PKT_SEND_ERR"),
				logging.WithCode(p.Code),
				logging.WithPacketID(p.ID),
				logging.WithPeer(peerOf(conn, addr)),
				logging.WithError(err),
			)
			return err
		}
		if n != len(wire) {
			slog.Error("RADIUSパケット送信失敗",
				logging.WithEventID("PKT_SEND_ERR"),
				logging.WithCode(p.Code),
				logging.WithPacketID(p.ID),
				logging.WithPeer(peerOf(conn, addr)),
				"written", n,
				"length", len(wire),
			)
			return fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, len(wire))
		}
		return nil
	}
}

// Recv はデータグラムを1つノンブロッキングで読み取り、パケットへ復号する。
// 受信待ちのデータがなければErrWouldBlockを返す。
// verifyが非nilなら、復号成功後かつ受信バッファ解放前に生のバイト列で呼び出し、
// エラーを返した場合はパケットを破棄する。
// 受信バッファはCodecのプールから借り、戻る前に必ず返却する。
func (t *Transport) Recv(conn net.Conn, verify func(raw []byte) error) (*radius.Packet, net.Addr, error) {
	rc, err := rawConn(conn)
	if err != nil {
		return nil, nil, err
	}

	buf, err := t.codec.Pool().Get()
	if err != nil {
		return nil, nil, err
	}
	defer buf.Release()
	b := buf.Bytes()

	var (
		n    int
		from unix.Sockaddr
		rerr error
	)
	err = rc.Read(func(fd uintptr) bool {
		for {
			n, from, rerr = unix.Recvfrom(int(fd), b, unix.MSG_DONTWAIT)
			if rerr != unix.EINTR {
				return true
			}
		}
	})
	if err == nil {
		err = rerr
	}
	if err != nil {
		return nil, nil, t.recvError(conn, err)
	}

	peer := sockaddrToAddr(from)
	if peer == nil {
		peer = conn.RemoteAddr()
	}

	p, err := t.codec.Parse(b[:n])
	if err != nil {
		slog.Warn("RADIUSパケット破棄",
			logging.WithEventID("RADIUS_PARSE_ERR"),
			logging.WithPeer(peer),
			logging.WithError(err),
			"length", n,
		)
		return nil, peer, err
	}
	if verify != nil {
		if err := verify(b[:n]); err != nil {
			slog.Warn("RADIUSパケット検証失敗",
				logging.WithEventID("RADIUS_VERIFY_ERR"),
				logging.WithCode(p.Code),
				logging.WithPacketID(p.ID),
				logging.WithPeer(peer),
				logging.WithError(err),
			)
			p.Free()
			return nil, peer, err
		}
	}
	return p, peer, nil
}

func (t *Transport) recvError(conn net.Conn, err error) error {
	switch {
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EWOULDBLOCK):
		return ErrWouldBlock
	case errors.Is(err, unix.ECONNREFUSED):
		// 送信先ポート未使用。上位の再送判断に任せる。
		slog.Debug("到達不能通知を受信",
			logging.WithEventID("PKT_RECV_REFUSED"),
			logging.WithPeer(conn.RemoteAddr()),
		)
		return fmt.Errorf("%w: %w", ErrConnRefused, err)
	default:
		slog.Error("RADIUSパケット受信失敗",
			logging.WithEventID("PKT_RECV_ERR"),
			logging.WithPeer(conn.RemoteAddr()),
			logging.WithError(err),
		)
		return fmt.Errorf("transport: recv: %w", err)
	}
}

// WaitReadable はconnが読み取り可能になるまで待機する。
// ctxの終了時はctx.Err()を返す。到達不能通知などソケットエラーが保留されている場合は
// それを消費してRecvと同じ分類のエラーを返す。
func (t *Transport) WaitReadable(ctx context.Context, conn net.Conn) error {
	rc, err := rawConn(conn)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fired := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Now())
		close(fired)
	})
	defer func() {
		if !stop() {
			// 期限切れを設定済み。後続のRecvのために戻す。
			<-fired
			_ = conn.SetReadDeadline(time.Time{})
		}
	}()

	var peek [1]byte
	var perr error
	err = rc.Read(func(fd uintptr) bool {
		_, _, perr = unix.Recvfrom(int(fd), peek[:], unix.MSG_PEEK|unix.MSG_DONTWAIT)
		return perr != unix.EAGAIN && perr != unix.EWOULDBLOCK && perr != unix.EINTR
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return t.recvError(conn, err)
	}
	if perr != nil {
		return t.recvError(conn, perr)
	}
	return nil
}

func rawConn(conn net.Conn) (syscall.RawConn, error) {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedConn, conn)
	}
	rc, err := sc.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedConn, err)
	}
	return rc, nil
}

func sockaddrToAddr(sa unix.Sockaddr) net.Addr {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		return &net.UDPAddr{IP: net.IPv4(a.Addr[0], a.Addr[1], a.Addr[2], a.Addr[3]), Port: a.Port}
	case *unix.SockaddrInet6:
		addr := &net.UDPAddr{IP: append(net.IP(nil), a.Addr[:]...), Port: a.Port}
		if a.ZoneId != 0 {
			if ifi, err := net.InterfaceByIndex(int(a.ZoneId)); err == nil {
				addr.Zone = ifi.Name
			}
		}
		return addr
	default:
		return nil
	}
}

func peerOf(conn net.Conn, addr net.Addr) net.Addr {
	if addr != nil {
		return addr
	}
	return conn.RemoteAddr()
}

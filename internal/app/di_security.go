package app

import (
	"context"
	"encoding/base64"
	"fmt"

	securityDomain "github.com/leaflogic/securecore/internal/security/domain"
	securityService "github.com/leaflogic/securecore/internal/security/service"
	securityUsecase "github.com/leaflogic/securecore/internal/security/usecase"
	storageRepository "github.com/leaflogic/securecore/internal/storage/repository"
	storageService "github.com/leaflogic/securecore/internal/storage/service"
)

// DeviceInfo returns the host device info source.
func (c *Container) DeviceInfo() securityService.DeviceInfo {
	c.deviceInfoInit.Do(func() {
		c.deviceInfo = securityService.NewHostDeviceInfo(c.config.AppID, c.config.StateDir)
	})
	return c.deviceInfo
}

// Hasher returns the SHA-256 hasher instance.
func (c *Container) Hasher() securityService.Hasher {
	c.hasherInit.Do(func() {
		c.hasher = securityService.NewSHA256Hasher()
	})
	return c.hasher
}

// Fingerprinter returns the device fingerprinter instance.
func (c *Container) Fingerprinter() securityService.DeviceFingerprinter {
	c.fingerprinterInit.Do(func() {
		c.fingerprinter = securityService.NewDeviceFingerprinter(
			c.DeviceInfo(),
			c.Hasher(),
			c.Logger(),
		)
	})
	return c.fingerprinter
}

// PhotoMetadataExtractor returns the EXIF metadata extractor instance.
func (c *Container) PhotoMetadataExtractor() securityService.PhotoMetadataExtractor {
	c.extractorInit.Do(func() {
		c.extractor = securityService.NewPhotoMetadataExtractor(c.Logger())
	})
	return c.extractor
}

// KeyDeriver returns the key deriver instance.
func (c *Container) KeyDeriver() securityService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = securityService.NewKeyDeriver(c.Hasher())
	})
	return c.keyDeriver
}

// BiometricGate returns the biometric gate. The default platform reports no
// biometric capability, steering authentication to the key-presence fallback;
// deployments with real prompt hardware inject their own platform.
func (c *Container) BiometricGate() securityService.BiometricGate {
	c.gateInit.Do(func() {
		c.gate = securityService.NewBiometricGate(
			securityService.NewUnsupportedPlatform(),
			c.Logger(),
		)
	})
	return c.gate
}

// ValueCipher returns the cipher encrypting all stored values. A configured
// keeper URI takes precedence; otherwise the local ChaCha20-Poly1305 cipher
// is built from the configured base64 key.
func (c *Container) ValueCipher(ctx context.Context) (storageRepository.ValueCipher, error) {
	c.cipherInit.Do(func() {
		cipher, err := c.initValueCipher(ctx)
		if err != nil {
			c.initErrors["cipher"] = err
			return
		}
		c.cipher = cipher
	})
	if storedErr, exists := c.initErrors["cipher"]; exists {
		return nil, storedErr
	}
	return c.cipher, nil
}

// KVRepository returns the record repository selected by the store driver.
func (c *Container) KVRepository() (storageRepository.KVRepository, error) {
	c.repoInit.Do(func() {
		repo, err := c.initKVRepository()
		if err != nil {
			c.initErrors["repo"] = err
			return
		}
		c.repo = repo
	})
	if storedErr, exists := c.initErrors["repo"]; exists {
		return nil, storedErr
	}
	return c.repo, nil
}

// SecureStore returns the secure store instance.
func (c *Container) SecureStore(ctx context.Context) (storageService.SecureStore, error) {
	c.secureStoreInit.Do(func() {
		repo, err := c.KVRepository()
		if err != nil {
			c.initErrors["secureStore"] = fmt.Errorf(
				"failed to get repository for secure store: %w", err)
			return
		}
		cipher, err := c.ValueCipher(ctx)
		if err != nil {
			c.initErrors["secureStore"] = fmt.Errorf(
				"failed to get cipher for secure store: %w", err)
			return
		}
		securityMetrics, err := c.SecurityMetrics()
		if err != nil {
			c.initErrors["secureStore"] = fmt.Errorf(
				"failed to get metrics for secure store: %w", err)
			return
		}
		c.secureStore = storageService.NewSecureStore(repo, cipher, c.Logger(), securityMetrics)
	})
	if storedErr, exists := c.initErrors["secureStore"]; exists {
		return nil, storedErr
	}
	return c.secureStore, nil
}

// Session returns the process-wide security session.
func (c *Container) Session() *securityDomain.Session {
	c.sessionInit.Do(func() {
		c.session = securityDomain.NewSession()
	})
	return c.session
}

// SecurityCoordinator returns the security coordinator instance.
func (c *Container) SecurityCoordinator(ctx context.Context) (securityUsecase.SecurityCoordinator, error) {
	c.coordinatorInit.Do(func() {
		store, err := c.SecureStore(ctx)
		if err != nil {
			c.initErrors["coordinator"] = fmt.Errorf(
				"failed to get secure store for coordinator: %w", err)
			return
		}
		securityMetrics, err := c.SecurityMetrics()
		if err != nil {
			c.initErrors["coordinator"] = fmt.Errorf(
				"failed to get metrics for coordinator: %w", err)
			return
		}
		c.coordinator = securityUsecase.NewSecurityCoordinator(securityUsecase.Config{
			Fingerprinter:   c.Fingerprinter(),
			Extractor:       c.PhotoMetadataExtractor(),
			KeyDeriver:      c.KeyDeriver(),
			Gate:            c.BiometricGate(),
			Store:           store,
			Session:         c.Session(),
			AuthLimiter:     c.authLimiter(),
			Logger:          c.Logger(),
			SecurityMetrics: securityMetrics,
		})
	})
	if storedErr, exists := c.initErrors["coordinator"]; exists {
		return nil, storedErr
	}
	return c.coordinator, nil
}

// initValueCipher creates the value cipher from the configuration.
func (c *Container) initValueCipher(ctx context.Context) (storageRepository.ValueCipher, error) {
	if c.config.KeeperURI != "" {
		cipher, err := storageRepository.OpenKeeperCipher(ctx, c.config.KeeperURI)
		if err != nil {
			return nil, fmt.Errorf("failed to open keeper cipher: %w", err)
		}
		return cipher, nil
	}

	if c.config.StoreKeyBase64 == "" {
		return nil, fmt.Errorf("either KEEPER_URI or STORE_KEY_BASE64 must be configured")
	}
	key, err := base64.StdEncoding.DecodeString(c.config.StoreKeyBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode store key: %w", err)
	}
	cipher, err := storageRepository.NewLocalCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create local cipher: %w", err)
	}
	return cipher, nil
}

// initKVRepository creates the record repository selected by the store driver.
func (c *Container) initKVRepository() (storageRepository.KVRepository, error) {
	switch c.config.StoreDriver {
	case "file":
		repo, err := storageRepository.NewFileRepository(c.config.StorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file repository: %w", err)
		}
		return repo, nil
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for repository: %w", err)
		}
		return storageRepository.NewPostgreSQLRepository(db), nil
	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for repository: %w", err)
		}
		return storageRepository.NewMySQLRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
}
